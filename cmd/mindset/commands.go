package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalambet/mindset/internal/coach"
	"github.com/kalambet/mindset/internal/config"
	"github.com/kalambet/mindset/internal/inference"
)

// --- boost ---

var boostCmd = &cobra.Command{
	Use:   "boost",
	Short: "Get a growth tip and affirmation for your mood and goal",
	Long: `Get a growth tip and affirmation for your mood and goal.

Examples:
  mindset boost --mood motivated --goal "Enhance Focus"
  mindset boost --mood down --goal "Build Resilience"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moodStr, _ := cmd.Flags().GetString("mood")
		goalStr, _ := cmd.Flags().GetString("goal")

		mood, err := coach.ParseMood(moodStr)
		if err != nil {
			return fmt.Errorf("%w (see `mindset options`)", err)
		}
		goal, err := coach.ParseGoal(goalStr)
		if err != nil {
			return fmt.Errorf("%w (see `mindset options`)", err)
		}

		c, _, err := newCoach(true)
		if err != nil {
			return err
		}

		printStep("Generating your personalized advice...")
		res := c.Boost(cmd.Context(), mood, goal)
		return printResult(cmd, "Your Growth Boost:", res)
	},
}

func init() {
	boostCmd.Flags().String("mood", string(coach.Moods[0]), "how you feel today: "+joinOptions(coach.Moods))
	boostCmd.Flags().String("goal", string(coach.Goals[0]), "your growth goal: "+joinOptions(coach.Goals))
}

// --- insight ---

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Get a short guide on a mindfulness or personal growth topic",
	Long: `Get a short guide on a mindfulness or personal growth topic.

Examples:
  mindset insight --topic "Habits for Success"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topicStr, _ := cmd.Flags().GetString("topic")

		topic, err := coach.ParseTopic(topicStr)
		if err != nil {
			return fmt.Errorf("%w (see `mindset options`)", err)
		}

		c, _, err := newCoach(true)
		if err != nil {
			return err
		}

		printStep("Fetching wisdom...")
		res := c.Insight(cmd.Context(), topic)
		return printResult(cmd, "Insight:", res)
	},
}

func init() {
	insightCmd.Flags().String("topic", string(coach.Topics[0]), "topic to learn about: "+joinOptions(coach.Topics))
}

// printResult writes a generation in markdown. Failures are shown the same
// way as text and do not fail the command.
func printResult(cmd *cobra.Command, heading string, res inference.Result) error {
	md := fmt.Sprintf("**%s**\n\n%s\n", heading, res.Display())
	out, err := renderMarkdown(md)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// --- progress ---

var progressCmd = &cobra.Command{
	Use:   "progress <0-100>",
	Short: "Rate your progress today and get feedback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := coach.ParseProgress(args[0])
		if err != nil {
			return err
		}

		fb := coach.FeedbackFor(progress)
		writeLine(cmd, "%s", progressBar(progress, 30))
		switch fb.Band {
		case coach.BandSuccess:
			printSuccess("%s", fb.Message)
		case coach.BandInfo:
			printInfo("%s", fb.Message)
		default:
			printWarning("%s", fb.Message)
		}
		return nil
	},
}

func progressBar(progress, width int) string {
	filled := progress * width / coach.MaxProgress
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("#", filled), strings.Repeat("-", width-filled), progress)
}

// --- options ---

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List valid moods, goals and topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := coach.AllOptions()
		writeLine(cmd, "%s", colorize(colorBold, "Moods:"))
		for _, m := range opts.Moods {
			writeLine(cmd, "  %s", m)
		}
		writeLine(cmd, "%s", colorize(colorBold, "Goals:"))
		for _, g := range opts.Goals {
			writeLine(cmd, "  %s", g)
		}
		writeLine(cmd, "%s", colorize(colorBold, "Topics:"))
		for _, t := range opts.Topics {
			writeLine(cmd, "  %s", t)
		}
		return nil
	},
}

func joinOptions[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			writeLine(cmd, "  %s = %s  (%s)", colorize(colorBold, k.Key), k.Value, k.EnvVar)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value.\n\nValid keys: " + strings.Join(config.ValidKeys(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <huggingface-api-key>",
	Short: "Store the Hugging Face API key in the platform secret store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetAPIKey(args[0]); err != nil {
			return err
		}
		printSuccess("API key stored")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
}
