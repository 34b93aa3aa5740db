package cli

import (
	"fmt"

	"github.com/danakotech/osintwalletonline/internal/core/domain"
)

func printSummary(report *domain.WalletReport) {
	verdict := report.RiskAnalysis

	fmt.Printf("Address:     %s\n", report.Address)
	fmt.Printf("Balance:     %s ETH\n", report.Balance)
	fmt.Printf("Risk level:  %s (score %.1f/10, confidence %d%%)\n",
		verdict.RiskLevel, verdict.RiskScore, verdict.ConfidenceLevel)
	if verdict.IsBlacklisted {
		fmt.Println("Blacklisted: YES")
	}
	fmt.Println()

	for _, factor := range verdict.RiskFactors {
		fmt.Printf("  - %s\n", factor)
	}
	fmt.Println()

	if len(report.Tokens) > 0 {
		fmt.Printf("Tokens (%d):\n", len(report.Tokens))
		for _, token := range report.Tokens {
			fmt.Printf("  %-8s %s (%s)\n", token.Symbol, token.Balance, token.Name)
		}
		fmt.Println()
	}

	if len(report.Contracts) > 0 {
		fmt.Printf("Top contracts (%d):\n", len(report.Contracts))
		for _, c := range report.Contracts {
			fmt.Printf("  %s  x%d\n", c.Address, c.InteractionCount)
		}
		fmt.Println()
	}

	fmt.Println(verdict.Recommendation)
}
