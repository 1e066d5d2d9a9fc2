package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	txDatamodel "budgetbook/internal/core/datamodel/transaction"
	"budgetbook/internal/database"
	"budgetbook/internal/transaction"
	"budgetbook/internal/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample transactions for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := database.Gorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if err := gormDB.Exec("DELETE FROM transactions").Error; err != nil {
				log.Fatalf("failed to clear transactions: %v", err)
			}
			fmt.Println("Cleared existing transactions")
		}

		var count int64
		if err := gormDB.Model(&txDatamodel.Transaction{}).Count(&count).Error; err != nil {
			log.Fatalf("failed to count transactions: %v", err)
		}
		if count > 0 {
			fmt.Printf("transactions table already has %d rows; skipping seed\n", count)
			return
		}

		today := types.DateOf(time.Now())
		samples := []*txDatamodel.Transaction{
			{Date: types.DateOf(time.Now().AddDate(0, 0, -14)), Type: transaction.TypeIncome, Category: "Salary", Amount: decimal.RequireFromString("2500.00"), Description: "Monthly salary"},
			{Date: types.DateOf(time.Now().AddDate(0, 0, -10)), Type: transaction.TypeExpense, Category: "Food", Amount: decimal.RequireFromString("42.75"), Description: "Groceries"},
			{Date: types.DateOf(time.Now().AddDate(0, 0, -7)), Type: transaction.TypeExpense, Category: "Transport", Amount: decimal.RequireFromString("15.00"), Description: "Metro card top-up"},
			{Date: types.DateOf(time.Now().AddDate(0, 0, -3)), Type: transaction.TypeExpense, Category: "Entertainment", Amount: decimal.RequireFromString("28.50"), Description: "Cinema"},
			{Date: today, Type: transaction.TypeIncome, Category: "Gift", Amount: decimal.RequireFromString("100.00"), Description: ""},
		}

		for _, s := range samples {
			if err := gormDB.Create(s).Error; err != nil {
				log.Fatalf("failed to seed transaction: %v", err)
			}
		}

		fmt.Printf("Seeded %d sample transactions\n", len(samples))
	},
}
