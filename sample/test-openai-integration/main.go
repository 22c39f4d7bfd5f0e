package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
)

// Manual smoke test against the real API. Run with a funded key:
//
//	go run ./sample/test-openai-integration
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment")
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatal("❌ OPENAI_API_KEY must be set")
	}

	client := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_URL"))

	company := "Stripe"
	if len(os.Args) > 1 {
		company = os.Args[1]
	}

	fmt.Printf("🔄 Analyzing %s...\n\n", company)

	analysis, err := client.AnalyzeCompany(context.Background(), company, "brain")
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Printf("Analysis of %s:\n", company)
	fmt.Printf("   Industry:  %s\n", analysis.Industry)
	fmt.Printf("   Location:  %s\n", analysis.Location)
	fmt.Printf("   Employees: %s\n", analysis.Employees)
	fmt.Printf("   Website:   %s\n", analysis.Website)
	fmt.Printf("   Score:     %.0f (qualified: %v)\n", analysis.LeadScore, analysis.IsQualified)
	fmt.Printf("   Interest:  %.0f\n", analysis.AIInterestLevel)
	fmt.Printf("   Evidence:  %s\n", analysis.AIEvidence)
}
