package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/config"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/database"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/inputs"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/planner"
	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/store"
)

type Commander struct {
	planner   *planner.Planner
	inputs    *inputs.Inputs
	jsonStore *store.JSONStore
	repo      *database.Repository
	scheduler *planner.Scheduler
	config    *config.Config

	currentPlan *planner.Plan

	// color
	green  func(a ...interface{}) string
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	blue   func(a ...interface{}) string
}

func NewCommander(p *planner.Planner, in *inputs.Inputs, jsonStore *store.JSONStore,
	repo *database.Repository, cfg *config.Config) *Commander {

	var recorder planner.RunRecorder
	if repo != nil {
		recorder = repo
	}

	return &Commander{
		planner:   p,
		inputs:    in,
		jsonStore: jsonStore,
		repo:      repo,
		scheduler: planner.NewScheduler(p, recorder, cfg.App.Planner.WeeksAhead),
		config:    cfg,
		green:     color.New(color.FgGreen).SprintFunc(),
		red:       color.New(color.FgRed).SprintFunc(),
		yellow:    color.New(color.FgYellow).SprintFunc(),
		cyan:      color.New(color.FgCyan).SprintFunc(),
		blue:      color.New(color.FgBlue).SprintFunc(),
	}
}

func (c *Commander) ExecuteCommand(command string, args []string) {
	switch command {
	case "help", "h":
		c.showHelp()
	case "generate", "g":
		count := 0
		if len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				count = n
			}
		}
		c.generateWeek(count, 0)
	case "generate-next", "gnext":
		c.generateWeek(0, 1)
	case "show":
		c.showPlan(args)
	case "score":
		c.showScore()
	case "export", "e":
		c.exportPlan()
	case "load":
		c.loadRecord(args)
	case "inputs":
		c.showInputs()
	case "history":
		c.showHistory()
	case "start":
		c.startAutoPlanner()
	case "stop":
		c.stopAutoPlanner()
	case "status":
		c.showStatus()
	case "clear":
		c.clearScreen()
	case "quit", "exit", "q":
		c.quit()
	default:
		fmt.Printf("%s Unknown command: %s\n", c.red("✗"), command)
		fmt.Println("Type 'help' for available commands")
	}
}

func (c *Commander) showHelp() {
	fmt.Println(c.blue("\nAvailable Commands:"))
	fmt.Println("\n" + c.cyan("Basic:"))
	fmt.Println("  help            - Show this help message")
	fmt.Println("  status          - Show current status")
	fmt.Println("  quit            - Exit program")

	fmt.Println("\n" + c.cyan("Planning:"))
	fmt.Println("  generate [n]    - Generate this week's calendar (n posts)")
	fmt.Println("  generate-next   - Generate next week's calendar")
	fmt.Println("  start/stop      - Start/stop the auto-planner")

	fmt.Println("\n" + c.cyan("Review:"))
	fmt.Println("  show [posts|comments] - Show the current plan")
	fmt.Println("  score           - Show quality score breakdown")
	fmt.Println("  history         - Show recorded plan runs")

	fmt.Println("\n" + c.cyan("Data:"))
	fmt.Println("  load <key> <file> - Load an input table from a JSON file")
	fmt.Println("  inputs          - Show the normalized input tables")
	fmt.Println("  export          - Export the current plan to CSV")
	fmt.Println("  clear           - Clear screen")
}

func (c *Commander) generateWeek(count, weeksAhead int) {
	weekStart := startOfWeek(time.Now().AddDate(0, 0, 7*weeksAhead))

	label := "this week"
	if weeksAhead > 0 {
		label = "next week"
	}
	fmt.Printf(c.cyan("Generating calendar for %s (week of %s)...\n"),
		label, weekStart.Format("2006-01-02"))

	plan := c.planner.GenerateWeek(count, weekStart)
	c.currentPlan = plan

	fmt.Printf("%s Generated %d posts and %d comments (score %s/10)\n",
		c.green("✓"), len(plan.Posts), len(plan.Comments),
		c.green(fmt.Sprintf("%.1f", plan.Score)))

	if count > 0 && len(plan.Posts) < count {
		fmt.Printf("%s Only %d unique community+keyword pairings were available\n",
			c.yellow("⚠"), len(plan.Posts))
	}

	if c.repo != nil {
		if err := c.repo.SaveRun(plan.Run()); err != nil {
			fmt.Printf("%s Failed to record run: %v\n", c.yellow("⚠"), err)
		}
	}
}

func (c *Commander) showPlan(args []string) {
	if c.currentPlan == nil {
		fmt.Printf("%s No plan yet — run 'generate' first\n", c.yellow("⚠"))
		return
	}

	section := ""
	if len(args) > 0 {
		section = strings.ToLower(args[0])
	}

	if section == "" || section == "posts" {
		fmt.Printf(c.blue("\nPosts (week of %s):\n"), c.currentPlan.WeekStart.Format("2006-01-02"))
		fmt.Println(strings.Repeat("─", 70))
		for _, p := range c.currentPlan.Posts {
			title := p.Title
			if len(title) > 60 {
				title = title[:60] + "..."
			}
			fmt.Printf("\n%s [%s] %s\n", c.green(p.PostID), c.cyan(p.Subreddit), title)
			fmt.Printf("  by %s | %s | keywords: %s\n",
				p.AuthorUsername, p.Timestamp.Format("Jan 02 15:04"), p.KeywordIDList())
		}
	}

	if section == "" || section == "comments" {
		fmt.Println(c.blue("\nComments:"))
		fmt.Println(strings.Repeat("─", 70))
		for _, cm := range c.currentPlan.Comments {
			text := cm.CommentText
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			parent := "top-level"
			if cm.ParentCommentID != "" {
				parent = "reply to " + cm.ParentCommentID
			}
			fmt.Printf("%s on %s (%s) by %s: %s\n",
				c.green(cm.CommentID), cm.PostID, parent, cm.Username, text)
		}
	}
}

func (c *Commander) showScore() {
	if c.currentPlan == nil {
		fmt.Printf("%s No plan yet — run 'generate' first\n", c.yellow("⚠"))
		return
	}

	d := c.currentPlan.Diagnostics

	fmt.Println(c.blue("\nQuality Preview"))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Overall quality score: %s/10\n", c.green(fmt.Sprintf("%.1f", c.currentPlan.Score)))
	fmt.Printf("  Duplicate posts (same subreddit + keyword combo): %d\n", d.DuplicatePairs)
	fmt.Printf("  Orphan comments (parent missing):                 %d\n", d.OrphanComments)
	fmt.Printf("  Persona mismatches (author not in personas):      %d\n", d.PersonaMismatch)
	fmt.Printf("  Repeated comment texts:                           %d\n", d.RepeatedComments)
}

func (c *Commander) exportPlan() {
	if c.currentPlan == nil {
		fmt.Printf("%s No plan yet — run 'generate' first\n", c.yellow("⚠"))
		return
	}

	exporter := NewExporter(c.config.App.ExportPath)
	postsPath, commentsPath, err := exporter.Export(c.currentPlan.Posts, c.currentPlan.Comments)
	if err != nil {
		fmt.Printf("%s Error: %v\n", c.red("✗"), err)
		return
	}

	fmt.Printf("%s Exported posts to %s\n", c.green("✓"), postsPath)
	fmt.Printf("%s Exported comments to %s\n", c.green("✓"), commentsPath)
}

func (c *Commander) loadRecord(args []string) {
	if len(args) < 2 {
		fmt.Printf("%s Usage: load <company|personas|subreddits|keywords> <file.json>\n", c.yellow("⚠"))
		return
	}

	key, path := strings.ToLower(args[0]), args[1]
	switch key {
	case inputs.KeyCompany, inputs.KeyPersonas, inputs.KeySubreddits, inputs.KeyKeywords:
	default:
		fmt.Printf("%s Unknown record key: %s\n", c.red("✗"), key)
		return
	}

	if err := c.jsonStore.ImportFile(key, path); err != nil {
		fmt.Printf("%s Error: %v\n", c.red("✗"), err)
		return
	}

	if c.repo != nil {
		if v, ok := c.jsonStore.Lookup(key); ok {
			if err := c.repo.SaveRecord(key, v); err != nil {
				fmt.Printf("%s Failed to mirror %s to database: %v\n", c.yellow("⚠"), key, err)
			}
		}
	}

	fmt.Printf("%s Loaded %s from %s\n", c.green("✓"), key, path)
}

func (c *Commander) showInputs() {
	company := c.inputs.Company()
	personas := c.inputs.Personas()
	subreddits := c.inputs.Subreddits()
	keywords := c.inputs.Keywords()

	fmt.Println(c.blue("\nNormalized Inputs"))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Company:         %s (%d posts/week)\n", c.cyan(company.Name), company.NumPostsPerWeek)
	if company.Description != "" {
		fmt.Printf("Description:     %s\n", company.Description)
	}

	fmt.Printf("Personas:        %d\n", len(personas))
	for _, p := range personas {
		fmt.Printf("  • %s (%s)", p.Username, p.Voice.Tone)
		if p.Background != "" {
			fmt.Printf(" — %s", p.Background)
		}
		fmt.Println()
	}

	fmt.Printf("Subreddits:      %s\n", strings.Join(subreddits, ", "))

	fmt.Printf("Keywords:        %d\n", len(keywords))
	for _, kw := range keywords {
		fmt.Printf("  • %s: %s\n", kw.ID, kw.Text)
	}
}

func (c *Commander) showHistory() {
	if c.repo == nil {
		fmt.Printf("%s No database attached — run history is unavailable\n", c.yellow("⚠"))
		return
	}

	runs, err := c.repo.RecentRuns(10)
	if err != nil {
		fmt.Printf("%s Error: %v\n", c.red("✗"), err)
		return
	}

	fmt.Println(c.blue("\nPlan Run History"))
	fmt.Println(strings.Repeat("─", 70))

	for _, run := range runs {
		scoreColor := c.green
		if run.Score < 7 {
			scoreColor = c.yellow
		}
		if run.Score < 4 {
			scoreColor = c.red
		}

		fmt.Printf("%s | week of %s | %d posts, %d comments | score %s",
			run.CreatedAt.Format("Jan 02 15:04"),
			run.WeekStart.Format("2006-01-02"),
			run.PostsCount, run.CommentsCount,
			scoreColor(fmt.Sprintf("%.1f", run.Score)))

		if dups := run.Details["duplicate_pairs"]; dups > 0 {
			fmt.Printf(" | %s", c.red(fmt.Sprintf("%d dup", dups)))
		}
		fmt.Println()
	}
}

func (c *Commander) startAutoPlanner() {
	if c.scheduler.IsActive() {
		fmt.Printf("%s Auto-planner is already active\n", c.yellow("⚠"))
		return
	}

	interval := c.config.App.Planner.Interval
	c.scheduler.Start(interval)
	fmt.Printf("%s Started auto-planner (every %s)\n", c.green("✓"), interval)
}

func (c *Commander) stopAutoPlanner() {
	if !c.scheduler.IsActive() {
		fmt.Printf("%s Auto-planner is not active\n", c.yellow("⚠"))
		return
	}

	c.scheduler.Stop()
	fmt.Printf("%s Stopped auto-planner\n", c.green("✓"))
}

func (c *Commander) showStatus() {
	fmt.Println(c.blue("\nSystem Status"))
	fmt.Println(strings.Repeat("─", 40))

	company := c.inputs.Company()
	fmt.Printf("Company:         %s\n", c.cyan(company.Name))
	fmt.Printf("Posts per week:  %d\n", company.NumPostsPerWeek)

	if c.scheduler.IsActive() {
		fmt.Printf("Auto-planner:    %s\n", c.green("RUNNING"))
	} else {
		fmt.Printf("Auto-planner:    %s\n", c.red("stopped"))
	}

	if c.repo != nil {
		if err := database.GetDB().Ping(); err == nil {
			fmt.Printf("Database:        %s\n", c.green("CONNECTED ●"))
		} else {
			fmt.Printf("Database:        %s\n", c.red("DISCONNECTED ○"))
		}
		if count, err := c.repo.GetRunCount(); err == nil {
			fmt.Printf("Recorded runs:   %d\n", count)
		}
	} else {
		fmt.Printf("Database:        %s\n", c.yellow("not configured"))
	}

	if c.currentPlan != nil {
		fmt.Printf("Current plan:    week of %s (%d posts, score %.1f)\n",
			c.currentPlan.WeekStart.Format("2006-01-02"),
			len(c.currentPlan.Posts), c.currentPlan.Score)
	} else {
		fmt.Printf("Current plan:    %s\n", c.yellow("none"))
	}
}

func (c *Commander) clearScreen() {
	fmt.Print("\033[H\033[2J")

	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Println(cyan("╔══════════════════════════════════════════╗"))
	fmt.Println(cyan("║   Reddit Mastermind — Calendar Planner   ║"))
	fmt.Println(cyan("╚══════════════════════════════════════════╝"))
	fmt.Println()
	fmt.Println("Type 'help' for available commands")
}

func (c *Commander) quit() {
	if c.scheduler.IsActive() {
		fmt.Println("Stopping auto-planner...")
		c.scheduler.Stop()
	}

	fmt.Printf("%s Goodbye!\n", c.green("✓"))
	os.Exit(0)
}

// startOfWeek truncates a time to the local midnight of its day, which the
// generator then spreads posts across a 7-day window from.
func startOfWeek(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
