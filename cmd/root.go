// Package cmd holds the CLI surface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/intres/repoship/internal"
	"github.com/intres/repoship/internal/domain/commands"
	"github.com/intres/repoship/internal/domain/entities"
	domainRepos "github.com/intres/repoship/internal/domain/repositories"
	infraRepos "github.com/intres/repoship/internal/infrastructure/repositories"
	"github.com/intres/repoship/internal/infrastructure/repositories/gitcli"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	backendFlag string
	configPath  string
	description string
	private     bool
	verbose     bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "repoship OWNER REPO_NAME",
	Short: "Bootstrap a GitHub repository and open the first pull request",
	Long: `Bootstrap the prototype project in the current directory onto GitHub.

The run validates preconditions, creates the remote repository, records
two commits on two branches (main and feature/prototype-pipeline),
pushes both and opens a pull request from the feature branch to main.

Two interchangeable backends drive the remote side:
  gh    the gh CLI with its managed authentication (default)
  api   direct REST calls with a token from GITHUB_TOKEN or GH_TOKEN

The sequence is fail-fast and not resumable: a re-run against the same
repository name fails when the repository already exists.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return entities.NewStageError(
				entities.KindArgument,
				fmt.Sprintf("expected OWNER and REPO_NAME, got %d argument(s)", len(args)),
			)
		}
		return nil
	},
	RunE:          runBootstrap,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the first stage failure, if any.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.Flags().StringVarP(&backendFlag, "backend", "b", "",
		"Workflow driver: gh or api (default: gh, api when only a token is available)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to settings file (default: auto-detect)")
	rootCmd.Flags().StringVarP(&description, "description", "d",
		"Prototype analysis pipeline", "Repository description")
	rootCmd.Flags().BoolVar(&private, "private", false,
		"Create the repository as private")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

func runBootstrap(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	visibility := entities.VisibilityPublic
	if private {
		visibility = entities.VisibilityPrivate
	}
	desc := entities.NewRepositoryDescriptor(args[0], args[1], visibility, description)
	if err := desc.Validate(); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	container, err := buildContainer(settings, workDir)
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	token := settings.ResolveToken()
	name := backendFlag
	if name == "" {
		name = chooseBackend(token)
	}

	return container.Invoke(func(registry *infraRepos.BackendRegistry, command commands.Bootstrap) error {
		backend, getErr := registry.Get(name, token)
		if getErr != nil {
			return getErr
		}

		outcome, runErr := command.Execute(ctx, desc, backend)
		if runErr != nil {
			return runErr
		}

		// The two final stdout lines are the output contract consumers parse.
		fmt.Println(outcome.RepositoryURL)
		fmt.Println(outcome.PullRequest.URL)
		return nil
	})
}

func loadSettings() (*entities.Settings, error) {
	if configPath != "" {
		logger.Infof("Using settings file: %s", configPath)
		return entities.LoadSettings(configPath)
	}

	found, err := entities.FindSettingsFile()
	if err != nil {
		logger.Debug("No settings file found, using defaults")
		return entities.DefaultSettings(), nil
	}

	logger.Infof("Using settings file: %s", found)
	return entities.LoadSettings(found)
}

// chooseBackend picks the default driver: gh when available, otherwise
// the REST backend when a token is present.
func chooseBackend(token string) string {
	if _, err := exec.LookPath("gh"); err != nil && token != "" {
		return "api"
	}
	return "gh"
}

func buildContainer(settings *entities.Settings, workDir string) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() *entities.Settings { return settings }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() (domainRepos.Workspace, error) {
		return gitcli.NewWorkspace(workDir)
	}); err != nil {
		return nil, err
	}
	if err := internal.RegisterProviders(container); err != nil {
		return nil, err
	}

	return container, nil
}
