package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"plantmate/internal/app"
	"plantmate/internal/config"
	"plantmate/internal/model"
	"plantmate/internal/pm"
	"plantmate/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a PMApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "AddSpace", "Suggest").
func newApp(operation string) (*app.PMApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewPMApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "pm",
	Short: "PlantMate plant-care tracker",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		encrypt, _ := cmd.Flags().GetBool("encrypt")
		if encrypt {
			cfg.Store.Encryption = "age"
			if err := store.GenerateIdentity(cfg.Store.IdentityPath); err != nil {
				return fmt.Errorf("failed to generate identity: %w", err)
			}
			fmt.Printf("Identity: %s\n", cfg.Store.IdentityPath)
		}

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("Backend:  %s\n", cfg.Remote.BaseURL)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:  %s\n", cfg.LogDir)
		fmt.Printf("Store:    %s", cfg.Store.Type)
		if cfg.Store.Encryption == "age" {
			fmt.Printf(" (age encrypted)")
		}
		fmt.Println()
		fmt.Printf("Remote:   %s", cfg.Remote.Type)
		if cfg.Remote.Type == "http" {
			fmt.Printf(" %s", cfg.Remote.BaseURL)
		}
		if cfg.Remote.Type == "s3" {
			fmt.Printf(" s3://%s/%s", cfg.Remote.S3Bucket, cfg.Remote.S3Prefix)
		}
		fmt.Println()
		return nil
	},
}

// login / logout
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the PlantMate backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		email, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
		email = strings.TrimSpace(email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		user, err := a.Login(cmd.Context(), email, string(password))
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out")
		return nil
	},
}

// spaces command
var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Manage growing spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListSpaces")
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.Service().Spaces(cmd.Context())
		fmt.Printf("Spaces (%s):\n", res.Source)
		for _, s := range res.Items {
			fmt.Printf("  %-12s %-20s %-10s %2s %4.1fh %5.1f m2", s.ID, s.Name, s.Type, s.Direction, s.SunlightHours, s.AreaSqM)
			if s.Notes != "" {
				fmt.Printf("  %s", s.Notes)
			}
			fmt.Println()
		}
		return nil
	},
}

var spacesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a space",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddSpace")
		if err != nil {
			return err
		}
		defer a.Close()

		name, _ := cmd.Flags().GetString("name")
		typ, _ := cmd.Flags().GetString("type")
		direction, _ := cmd.Flags().GetString("direction")
		sun, _ := cmd.Flags().GetFloat64("sun")
		area, _ := cmd.Flags().GetFloat64("area")
		notes, _ := cmd.Flags().GetString("notes")

		sp, err := a.Service().AddSpace(pm.SpaceInput{
			Name:          name,
			Type:          model.SpaceType(typ),
			Direction:     model.Direction(direction),
			SunlightHours: sun,
			AreaSqM:       area,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added space %s (%s)\n", sp.Name, sp.ID)
		return nil
	},
}

var spacesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateSpace")
		if err != nil {
			return err
		}
		defer a.Close()

		var patch pm.SpacePatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			t := model.SpaceType(v)
			patch.Type = &t
		}
		if cmd.Flags().Changed("direction") {
			v, _ := cmd.Flags().GetString("direction")
			d := model.Direction(v)
			patch.Direction = &d
		}
		if cmd.Flags().Changed("sun") {
			v, _ := cmd.Flags().GetFloat64("sun")
			patch.SunlightHours = &v
		}
		if cmd.Flags().Changed("area") {
			v, _ := cmd.Flags().GetFloat64("area")
			patch.AreaSqM = &v
		}
		if cmd.Flags().Changed("notes") {
			v, _ := cmd.Flags().GetString("notes")
			patch.Notes = &v
		}

		sp, err := a.Service().UpdateSpace(args[0], patch)
		if err != nil {
			return err
		}

		fmt.Printf("Updated space %s (%s)\n", sp.Name, sp.ID)
		return nil
	},
}

var spacesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveSpace")
		if err != nil {
			return err
		}
		defer a.Close()

		left, err := a.Service().RemoveSpace(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d space(s) remaining\n", len(left))
		return nil
	},
}

// plants command
var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "Manage your plants",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListPlants")
		if err != nil {
			return err
		}
		defer a.Close()

		query, _ := cmd.Flags().GetString("query")
		for _, p := range a.Service().Plants(cmd.Context(), query) {
			name := p.Nickname
			if name == "" {
				name = p.CommonName
			}
			fmt.Printf("  %-12s %-18s %-24s %-14s water:%s\n", p.ID, name, p.ScientificName, p.SpaceName, strings.ToUpper(p.WateringNeed))
		}
		return nil
	},
}

var plantsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a plant to a space",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddPlant")
		if err != nil {
			return err
		}
		defer a.Close()

		spaceID, _ := cmd.Flags().GetString("space")
		slug, _ := cmd.Flags().GetString("plant")
		nickname, _ := cmd.Flags().GetString("nickname")

		user, _ := a.Service().CurrentUser()

		up, err := a.Service().AddPlant(cmd.Context(), pm.PlantInput{
			UserID:    firstNonEmpty(user.ID, "local"),
			SpaceID:   spaceID,
			PlantSlug: slug,
			Nickname:  nickname,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s)\n", up.PlantSlug, up.ID)
		return nil
	},
}

var plantsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemovePlant")
		if err != nil {
			return err
		}
		defer a.Close()

		left, err := a.Service().RemovePlant(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d plant(s) remaining\n", len(left))
		return nil
	},
}

// catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the plant catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListCatalog")
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.Service().Catalog(cmd.Context())
		fmt.Printf("Catalog (%s):\n", res.Source)
		for _, p := range res.Items {
			fmt.Printf("  %-16s %-18s %-26s light %2.0f-%2.0fh  water:%s\n",
				p.Slug, p.CommonName, p.ScientificName, p.LightMinHours, p.LightMaxHours, p.WateringNeed)
		}
		return nil
	},
}

// suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Recommend plants for a space",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Suggest")
		if err != nil {
			return err
		}
		defer a.Close()

		spaceID, _ := cmd.Flags().GetString("space")
		limit, _ := cmd.Flags().GetInt("limit")

		user, _ := a.Service().CurrentUser()
		suggestions := a.Service().Suggest(cmd.Context(), user.ID, spaceID, limit)
		if len(suggestions) == 0 {
			fmt.Println("No suggestions. Pick a space with `pm spaces` and pass --space.")
			return nil
		}

		for i, s := range suggestions {
			fmt.Printf("%2d. %-18s %.2f  %s\n", i+1, s.CommonName, s.Score, s.Rationale)
		}
		return nil
	},
}

// tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Today's watering tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListTasks")
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.Service().WaterTasks(cmd.Context())
		if len(res.Items) == 0 {
			fmt.Println("All caught up!")
			return nil
		}
		fmt.Printf("Watering (%s):\n", res.Source)
		for _, t := range res.Items {
			fmt.Printf("  %-6s %-14s %-16s due %s  %s\n", t.ID, t.PlantName, t.SpaceName, t.DueAt.Local().Format("15:04"), t.Note)
		}
		return nil
	},
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a watering task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DoneTask")
		if err != nil {
			return err
		}
		defer a.Close()

		left, err := a.Service().DoneTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d task(s) remaining\n", len(left))
		return nil
	},
}

var tasksSnoozeCmd = &cobra.Command{
	Use:   "snooze <id>",
	Short: "Snooze a watering task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SnoozeTask")
		if err != nil {
			return err
		}
		defer a.Close()

		minutes, _ := cmd.Flags().GetInt("minutes")
		_, err = a.Service().SnoozeTask(cmd.Context(), args[0], time.Duration(minutes)*time.Minute)
		if err != nil {
			return err
		}
		fmt.Printf("Snoozed %s for %d minutes\n", args[0], minutes)
		return nil
	},
}

// sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh every collection from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Sync")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		svc := a.Service()
		fmt.Printf("spaces:      %s (%d)\n", svc.Spaces(ctx).Source, len(svc.Spaces(ctx).Items))
		fmt.Printf("catalog:     %s (%d)\n", svc.Catalog(ctx).Source, len(svc.Catalog(ctx).Items))
		fmt.Printf("plants:      %s (%d)\n", svc.UserPlants(ctx).Source, len(svc.UserPlants(ctx).Items))
		fmt.Printf("water tasks: %s (%d)\n", svc.WaterTasks(ctx).Source, len(svc.WaterTasks(ctx).Items))
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	configInitCmd.Flags().Bool("encrypt", false, "encrypt the local store with a generated age identity")
	configCmd.AddCommand(configInitCmd, configListCmd)

	spacesAddCmd.Flags().String("name", "", "space name")
	spacesAddCmd.Flags().String("type", "balcony", "balcony, windowsill, or terrace")
	spacesAddCmd.Flags().String("direction", "S", "compass direction (N NE E SE S SW W NW)")
	spacesAddCmd.Flags().Float64("sun", 4, "sunlight hours per day (0-12)")
	spacesAddCmd.Flags().Float64("area", 1, "area in square meters")
	spacesAddCmd.Flags().String("notes", "", "free-form notes")
	spacesEditCmd.Flags().String("name", "", "space name")
	spacesEditCmd.Flags().String("type", "", "balcony, windowsill, or terrace")
	spacesEditCmd.Flags().String("direction", "", "compass direction (N NE E SE S SW W NW)")
	spacesEditCmd.Flags().Float64("sun", 0, "sunlight hours per day (0-12)")
	spacesEditCmd.Flags().Float64("area", 0, "area in square meters")
	spacesEditCmd.Flags().String("notes", "", "free-form notes")
	spacesCmd.AddCommand(spacesAddCmd, spacesEditCmd, spacesRmCmd)

	plantsCmd.Flags().String("query", "", "filter by nickname or species name")
	plantsAddCmd.Flags().String("space", "", "space id")
	plantsAddCmd.Flags().String("plant", "", "catalog slug")
	plantsAddCmd.Flags().String("nickname", "", "optional nickname")
	plantsCmd.AddCommand(plantsAddCmd, plantsRmCmd)

	suggestCmd.Flags().String("space", "", "space id to score against")
	suggestCmd.Flags().Int("limit", 12, "maximum number of suggestions")

	tasksSnoozeCmd.Flags().Int("minutes", 120, "snooze duration in minutes")
	tasksCmd.AddCommand(tasksDoneCmd, tasksSnoozeCmd)

	rootCmd.AddCommand(configCmd, loginCmd, logoutCmd, spacesCmd, plantsCmd, catalogCmd, suggestCmd, tasksCmd, syncCmd)
}
