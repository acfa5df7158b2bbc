package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/malabartrails/tours-backend/config"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

func main() {
	yes := flag.Bool("yes", false, "import without asking for confirmation")
	batchSize := flag.Int("batch", 200, "rows per insert batch")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run cmd/seed/main.go [-yes] [-batch N] <xlsx_file_path>")
	}
	filePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.Initialize(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, report, err := readTourRowsFromFile(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	report.print(os.Stdout)

	if len(rows) == 0 {
		fmt.Println("Nothing to import.")
		return
	}

	if !*yes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	importer := newTourImporter(
		repository.NewCategoryRepository(db.GetDB()),
		repository.NewTourRepository(db.GetDB()),
	)
	result, err := importer.Import(rows, *batchSize)
	if err != nil {
		log.Fatal("Failed to import tours:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("  Tours imported: %d\n", result.Imported)
	fmt.Printf("  Already present: %d\n", result.Existing)
	fmt.Printf("  Categories created: %d\n", result.CategoriesCreated)
}
