// Package cli provides the Cobra-based command-line interface for pomo.
// The root command is the timer itself; everything else is flag plumbing
// that maps persisted settings and overrides onto a session.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomo-sh/pomo/internal/assets"
	"github.com/pomo-sh/pomo/internal/config"
	clierrors "github.com/pomo-sh/pomo/internal/errors"
	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
	"github.com/pomo-sh/pomo/internal/session"
	"github.com/pomo-sh/pomo/internal/timer"
)

// Exit codes for the pomo CLI.
const (
	// ExitSuccess indicates normal completion or a declined restart
	ExitSuccess = 0
	// ExitUsage indicates a usage or configuration error, or a missing
	// OS notification facility
	ExitUsage = 1
)

// helpShown records that the custom help handler ran; usage output exits
// with ExitUsage rather than success.
var helpShown bool

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro interval timer",
	Long: `pomo walks a configurable sequence of work and break periods,
announcing each one on the console and/or as a desktop notification and
waiting out its duration.

The pattern is a colon-separated list of kind,seconds tokens:
  r  reminder    p  pomodoro    b  break    f  finish
The default pattern runs four 25-minute pomodoros with short breaks and a
long finish break. First launch without flags plays a short onboarding tour.`,
	Example: `  # Run the configured pattern once
  pomo

  # Loop forever, desktop notifications only
  pomo -r -n libnotify

  # A custom short cycle on the console
  pomo -n echo -p "p,600:b,120:p,600:f,300"

  # Smoke-test the full sequence in seconds
  pomo -d`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTimer,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if helpShown {
		return ExitUsage
	}
	if err != nil {
		if cliErr, ok := err.(*clierrors.CLIError); ok {
			clierrors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "pomo: %v\n", err)
		}
		return ExitUsage
	}
	return ExitSuccess
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("repeat", "r", false, "Restart the pattern automatically after each run")
	flags.StringP("pattern", "p", "", "Override the timer pattern (kind,seconds tokens joined by ':')")
	flags.StringP("notifier", "n", "", "Comma-separated backends: echo, libnotify")
	flags.BoolP("dry-run", "d", false, "Replace every wait with a 1-second placeholder")
	flags.BoolP("intro", "i", false, "Replay the onboarding tour")
	flags.String("config", "", "Path to the settings file (default: ~/.config/pomo/config.json)")
	_ = flags.MarkHidden("intro")

	// Define the help flag ourselves so usage output can exit non-zero,
	// matching the documented exit codes.
	flags.BoolP("help", "h", false, "Print usage")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		fmt.Fprintln(os.Stderr, cmd.Long)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, cmd.UsageString())
	})
}

// runTimer builds the session from persisted settings and flag overrides,
// then hands control to the session controller.
func runTimer(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	settingsPath, _ := flags.GetString("config")
	if settingsPath == "" {
		settingsPath = config.DefaultPath()
	}

	settings, existed, err := config.Load(settingsPath)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading settings")
	}

	// Explicit flags override persisted settings.
	repeat := settings.Repeat
	if flags.Changed("repeat") {
		repeat, _ = flags.GetBool("repeat")
	}
	patternStr := settings.Pattern
	if flags.Changed("pattern") {
		patternStr, _ = flags.GetString("pattern")
	}
	notifierCSV := settings.Notifier
	if flags.Changed("notifier") {
		notifierCSV, _ = flags.GetString("notifier")
	}
	dryRun, _ := flags.GetBool("dry-run")
	forceIntro, _ := flags.GetBool("intro")

	// A naked launch on first use triggers the onboarding tour.
	firstUse := !existed
	nakedLaunch := flags.NFlag() == 0
	showIntro := forceIntro || (firstUse && nakedLaunch)

	backends, err := notify.ParseBackends(notifierCSV)
	if err != nil {
		return err
	}

	pat, err := pattern.Parse(patternStr)
	if err != nil {
		return clierrors.MalformedPattern(err)
	}

	channels, console, err := buildChannels(backends)
	if err != nil {
		return err
	}

	// The countdown display is the console backend's low-level rendering;
	// route it through the same writer when the console is active.
	var waiterOut io.Writer
	if console != nil {
		waiterOut = console.Writer()
	}
	waiter := timer.NewWaiter(waiterOut, timer.DetectTerminalCapabilities())
	seq := timer.NewSequencer(channels, waiter, dryRun)

	notifiers := make([]notify.Notifier, len(channels))
	for i, ch := range channels {
		notifiers[i] = ch.Notifier
	}
	announcer := notify.NewMulti(notifiers...)

	persist := func() error {
		return config.Save(settingsPath, &config.Settings{
			Notifier: notifierCSV,
			Repeat:   repeat,
			Pattern:  patternStr,
		})
	}

	ctrl := session.NewController(seq, announcer, persist)
	return ctrl.Run(session.Options{
		Repeat:    repeat,
		DryRun:    dryRun,
		ShowIntro: showIntro,
		Pattern:   pat,
		FirstUse:  firstUse,
	})
}

// buildChannels constructs a notifier per selected backend, probing the
// desktop facility before any timer activity. A probe failure is fatal.
// The console notifier is also returned on its own so the countdown
// display can share its writer.
func buildChannels(backends []notify.Backend) ([]timer.BackendNotifier, *notify.Console, error) {
	var channels []timer.BackendNotifier
	var console *notify.Console
	for _, b := range backends {
		switch b {
		case notify.BackendConsole:
			console = notify.NewConsole()
			channels = append(channels, timer.BackendNotifier{
				Backend:  b,
				Notifier: console,
			})
		case notify.BackendDesktop:
			// Icon materialization is best effort; notifications go out
			// without one if the cache dir is unusable.
			iconPath, _ := assets.MaterializeIcon()
			desktop := notify.NewDesktop(iconPath)
			if err := desktop.Available(); err != nil {
				return nil, nil, err
			}
			channels = append(channels, timer.BackendNotifier{
				Backend:  b,
				Notifier: desktop,
			})
		}
	}
	return channels, console, nil
}
