package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/cli"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/config"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/database"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/inputs"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/planner"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/store"
)

func main() {
	var (
		configFile   = flag.String("config", "configs/config.yaml", "Configuration file path")
		generateFlag = flag.Bool("generate", false, "Generate this week's calendar and exit")
		nextFlag     = flag.Bool("next", false, "Plan next week instead of this week")
		exportFlag   = flag.Bool("export", false, "Export the generated calendar to CSV and exit")
		countFlag    = flag.Int("count", 0, "Posts to generate (0 uses the company setting)")
		seedFlag     = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	)
	flag.Parse()

	godotenv.Load()

	if err := loadConfig(*configFile); err != nil {
		log.Printf("Warning: Could not load config file %s: %v", *configFile, err)
		log.Println("Using default configuration")
		config.LoadDefault()
	}

	cfg := config.Get()

	var repo *database.Repository
	if dbURL := databaseURL(cfg); dbURL != "" {
		err := database.InitializeWithURL(dbURL,
			cfg.Database.MaxConnections,
			cfg.Database.MaxIdle,
			cfg.Database.ConnectionLifetime)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer database.Close()
		repo = database.NewRepository()
	}

	jsonStore, err := store.NewJSONStore(cfg.App.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize data store:", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	in := inputs.New(jsonStore)
	p := planner.New(in, cfg, rng)
	commander := cli.NewCommander(p, in, jsonStore, repo, cfg)

	if *generateFlag || *exportFlag {
		command := "generate"
		if *nextFlag {
			command = "generate-next"
		}

		var args []string
		if *countFlag > 0 {
			args = []string{strconv.Itoa(*countFlag)}
		}
		commander.ExecuteCommand(command, args)

		if *exportFlag {
			commander.ExecuteCommand("export", nil)
		}
		return
	}

	printWelcome(cfg)
	startInteractiveMode(commander, cfg)
}

func loadConfig(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		execPath, _ := os.Executable()
		execDir := filepath.Dir(execPath)
		altPath := filepath.Join(execDir, path)

		if _, err := os.Stat(altPath); err == nil {
			path = altPath
		} else {
			return fmt.Errorf("config file not found: %s", path)
		}
	}

	return config.Load(path)
}

func databaseURL(cfg *config.Config) string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return cfg.Database.URL
}

func printWelcome(cfg *config.Config) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Println(cyan("╔══════════════════════════════════════════╗"))
	fmt.Println(cyan("║   Reddit Mastermind — Calendar Planner   ║"))
	fmt.Println(cyan("╚══════════════════════════════════════════╝"))
	fmt.Println()
	fmt.Printf("Data directory: %s\n", cfg.App.DataDir)
	fmt.Println("Type 'help' for available commands")
}

func startInteractiveMode(commander *cli.Commander, cfg *config.Config) {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := cfg.App.CLI.Prompt
	if prompt == "" {
		prompt = "➜"
	}

	yellow := color.New(color.FgYellow).SprintFunc()

	for {
		fmt.Print(yellow("\n" + prompt + " "))
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		commander.ExecuteCommand(command, args)
	}
}
