package challenge

import "github.com/delbyte/codeolympics/internal/models"

// The three catalogs a challenge is drawn from. 8 constraints x 8 budgets x
// 10 domains gives 640 possible combinations.

var CoreConstraints = []models.ChallengePart{
	{Title: "No-Import Rookie", Description: "Only built-in functions, no libraries"},
	{Title: "Few-Variable Hero", Description: "Maximum 8 variables in entire program"},
	{Title: "Single-Function Master", Description: "Only 1 function allowed (plus main)"},
	{Title: "Error-Proof Coder", Description: "Program never crashes, handles all inputs"},
	{Title: "One-Loop Warrior", Description: "Maximum 1 loop in entire program"},
	{Title: "Short-Name Ninja", Description: "Variable names maximum 3 characters"},
	{Title: "FastResponse Builder", Description: "Must load/respond in under 2 seconds"},
	{Title: "Simple-State Creator", Description: "Program has 2-3 different modes/states"},
}

var LineBudgets = []models.ChallengePart{
	{Title: "Tiny Scripter", Description: "50 lines maximum"},
	{Title: "Mini Builder", Description: "100 lines maximum"},
	{Title: "Compact Coder", Description: "150 lines maximum"},
	{Title: "Standard Maker", Description: "200 lines maximum"},
	{Title: "Detailed Creator", Description: "300 lines maximum"},
	{Title: "Feature-Rich Dev", Description: "400 lines maximum"},
	{Title: "Professional Builder", Description: "500 lines maximum"},
	{Title: "Enterprise Creator", Description: "650 lines maximum"},
}

var ProjectDomains = []models.ChallengePart{
	{Title: "Simple Games", Description: "Tic-tac-toe, hangman, word games"},
	{Title: "Basic Tools", Description: "Calculators, converters, generators"},
	{Title: "Text Processing", Description: "Editors, analyzers, formatters"},
	{Title: "Number Crunching", Description: "Math tools, statistics, algorithms"},
	{Title: "File Management", Description: "Organizers, readers, processors"},
	{Title: "Quiz Systems", Description: "Trivia, flashcards, learning tools"},
	{Title: "Visual Creation", Description: "ASCII art, charts, graphics"},
	{Title: "Mini Databases", Description: "Records, inventory, contacts"},
	{Title: "Web Scrapers", Description: "Data collectors, parsers"},
	{Title: "System Utilities", Description: "Monitors, cleaners, automation"},
}
