package main

import (
	"fmt"
	"os"
	"strconv"

	"creature-server/internal/infrastructure/storage"
	"creature-server/pkg/logger"
)

func main() {
	logger.Init()

	if len(os.Args) < 3 {
		printHelp()
		return
	}

	journal, err := storage.OpenJournal(os.Args[2])
	if err != nil {
		fmt.Printf("Cannot open journal: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	switch os.Args[1] {
	case "tail":
		decisions, err := journal.RecentDecisions(parseLimit(3, 20))
		if err != nil {
			fmt.Printf("Query failed: %v\n", err)
			os.Exit(1)
		}
		printDecisions(decisions)
	case "creature":
		if len(os.Args) < 4 {
			fmt.Println("Usage: journaltool creature <db> <creature_id> [limit]")
			return
		}
		decisions, err := journal.CreatureDecisions(os.Args[3], parseLimit(4, 20))
		if err != nil {
			fmt.Printf("Query failed: %v\n", err)
			os.Exit(1)
		}
		printDecisions(decisions)
	default:
		printHelp()
	}
}

func parseLimit(argIdx, def int) int {
	if len(os.Args) <= argIdx {
		return def
	}
	limit, err := strconv.Atoi(os.Args[argIdx])
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

func printDecisions(decisions []storage.Decision) {
	if len(decisions) == 0 {
		fmt.Println("Journal is empty.")
		return
	}
	for _, d := range decisions {
		target := d.TargetID
		if target == "" {
			target = "-"
		}
		fmt.Printf("tick %4d | %-20s | %-8s | (%2d,%2d) | hp=%3d agg=%3d | target=%s\n",
			d.Tick, d.Name, d.Behavior, d.X, d.Y, d.HP, d.Aggression, target)
	}
}

func printHelp() {
	fmt.Println(`Journal Tool - просмотр SQLite-журнала решений существ
Commands:
  tail <db> [limit]                  - последние решения всех существ
  creature <db> <creature_id> [limit] - история решений одного существа`)
}
