package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/clocked"
	"github.com/Tiliavir/clocked/internal/config"
	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/vcslog"
)

var (
	hoursUser      string
	hoursVerbose   bool
	hoursDir       string
	hoursVCS       string
	hoursInitRules bool
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Estimate hours worked from commit history",
	Long: `Scan the current directory and its direct subdirectories for repositories,
collect the given user's commits and print one line per workday with the
commit count, an estimate of hours worked and the share of each category.

Commits made before 05:00 count toward the previous day. Hours are a rough
estimate: one hour is added before the first and after the last commit of the
day and the result is clamped to 6..12.

Categories come from per-repository rules in the YAML file named by
hours.categories_file in the config. Use --init-rules to write the built-in
rules there as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runHours,
}

func init() {
	hoursCmd.Flags().StringVarP(&hoursUser, "user", "u", "", "Commit author to report on")
	hoursCmd.Flags().BoolVarP(&hoursVerbose, "verbose", "v", false, "List every commit under its day")
	hoursCmd.Flags().StringVar(&hoursDir, "dir", ".", "Directory to scan for repositories")
	hoursCmd.Flags().StringVar(&hoursVCS, "vcs", "", "Version control system: hg or git (default from config)")
	hoursCmd.Flags().BoolVar(&hoursInitRules, "init-rules", false, "Write the built-in category rules to the categories file and exit")
}

func runHours(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	rulesPath, err := clocked.ExpandHome(cfg.Hours.CategoriesFile)
	if err != nil {
		fail(2, err)
	}
	if hoursInitRules {
		initRules(rulesPath)
		return nil
	}

	if hoursUser == "" {
		fmt.Fprintln(os.Stderr, styleError.Render("Missing required --user flag"))
		_ = cmd.Usage()
		os.Exit(1)
	}

	rules, err := config.LoadCategoryRules(rulesPath)
	if err != nil {
		fail(2, err)
	}

	vcs := hoursVCS
	if vcs == "" {
		vcs = cfg.Hours.VCS
	}
	runner, err := vcslog.NewRunner(vcs, reportLocation(cfg))
	if err != nil {
		fail(1, err)
	}

	entries, err := collectEntries(cmd.Context(), runner, hoursDir, hoursUser)
	if err != nil {
		fail(2, err)
	}

	err = vcslog.WriteReport(os.Stdout, vcslog.GroupByDate(entries), vcslog.NewCategorizer(rules), hoursVerbose)
	var ce *vcslog.ConfigError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "%s add rules for %q to %s\n", styleHint.Render("Hint:"), ce.Repo, rulesPath)
		fail(1, err)
	}
	if err != nil {
		fail(2, err)
	}
	return nil
}

// collectEntries reads user's commits from every repository under dir and
// prints a count per repository.
func collectEntries(ctx context.Context, runner *vcslog.Runner, dir, user string) ([]model.LogEntry, error) {
	repos, err := vcslog.DetectRepositories(dir, runner.VCS)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		fmt.Fprintf(os.Stderr, "%s no %s repositories found in %s\n", styleWarning.Render("Warning:"), runner.VCS, dir)
	}

	var all []model.LogEntry
	for _, repo := range repos {
		entries, err := runner.Log(ctx, repo, user)
		if err != nil {
			return nil, err
		}
		fmt.Printf("%s: %d entries\n", repo, len(entries))
		all = append(all, entries...)
	}
	return all, nil
}

func initRules(path string) {
	if _, err := os.Stat(path); err == nil {
		fail(1, fmt.Errorf("%s already exists", path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fail(2, fmt.Errorf("creating directory for %s: %w", path, err))
	}
	if err := config.SaveCategoryRules(path, config.DefaultCategoryRules()); err != nil {
		fail(2, err)
	}
	fmt.Println(styleSuccess.Render("Wrote category rules to " + path))
}
