package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/lyric-term/audio"
	"github.com/lixenwraith/lyric-term/constants"
	"github.com/lixenwraith/lyric-term/content"
	"github.com/lixenwraith/lyric-term/player"
	"github.com/lixenwraith/lyric-term/timeline"
)

// Environment variables providing flag defaults
const (
	envSong  = "LYRIC_TERM_SONG"
	envTick  = "LYRIC_TERM_TICK"
	envDebug = "LYRIC_TERM_DEBUG"
	envCue   = "LYRIC_TERM_CUE"
)

// options holds flags shared by all commands
type options struct {
	songPath string
	duration float64
	tick     time.Duration
	cue      bool
	debug    bool

	envErr error // First invalid environment default, reported before running
}

// optionsFromEnv reads flag defaults from the environment
func optionsFromEnv() *options {
	opts := &options{
		songPath: os.Getenv(envSong),
		tick:     constants.TickInterval,
	}

	if v := os.Getenv(envTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			opts.envErr = fmt.Errorf("%s: %w", envTick, err)
		}
		opts.tick = d
	}
	opts.debug = envBool(envDebug, &opts.envErr)
	opts.cue = envBool(envCue, &opts.envErr)
	return opts
}

func envBool(name string, firstErr *error) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil && *firstErr == nil {
		*firstErr = fmt.Errorf("%s: %w", name, err)
	}
	return b
}

// newRootCommand creates the lyric-term command tree
func newRootCommand() *cobra.Command {
	opts := optionsFromEnv()

	cmd := &cobra.Command{
		Use:   "lyric-term",
		Short: "Terminal karaoke lyric display",
		Long: "Shows timed lyrics with character highlighting, synchronized to a pausable clock.\n\n" +
			"Keys: Space pause/resume, R restart, Up/Down shift timing by 0.1s, Q quit.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envErr != nil {
				return opts.envErr
			}
			if opts.tick < constants.MinTickInterval || opts.tick > constants.MaxTickInterval {
				return fmt.Errorf("invalid tick %v: must be between %v and %v",
					opts.tick, constants.MinTickInterval, constants.MaxTickInterval)
			}
			if opts.duration < 0 {
				return fmt.Errorf("invalid duration %v: must not be negative", opts.duration)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.songPath, "song", "s", opts.songPath, "song file (.yaml, .yml or .lrc); built-in example when empty")
	cmd.PersistentFlags().Float64Var(&opts.duration, "duration", 0, "song length in seconds for LRC files without a [length:] tag")
	cmd.Flags().DurationVar(&opts.tick, "tick", opts.tick, "redraw interval")
	cmd.Flags().BoolVar(&opts.cue, "cue", opts.cue, "click when a new lyric line starts")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", opts.debug, "write logs to "+logDir+"/"+logFileName)

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newListCommand(opts))

	return cmd
}

// loadTimeline resolves the song to play
func loadTimeline(opts *options) (*timeline.Timeline, error) {
	if opts.songPath == "" {
		return content.Default(), nil
	}
	return content.Load(opts.songPath, opts.duration)
}

// runPlayer owns the terminal for the lifetime of playback
func runPlayer(ctx context.Context, opts *options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	tl, err := loadTimeline(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLYRIC-TERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var cue player.Cue
	if opts.cue {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without cue)", err)
		} else {
			cue = sm
			defer sm.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Input polling goroutine; PollEvent returns nil once the screen is finalized
	events := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	p := player.New(screen, tl, player.Config{Tick: opts.tick, Cue: cue})
	return p.Run(ctx, events)
}
