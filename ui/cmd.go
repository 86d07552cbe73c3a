package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"clickchess/src"
	"clickchess/src/engine"
	"clickchess/src/engine/minimax"
	"clickchess/src/engine/random"
	"clickchess/src/logx"
	clic "clickchess/ui/cli"
	"clickchess/ui/gui"
	"clickchess/ui/gui/gbase"

	"github.com/urfave/cli/v3"
)

const logfile string = "clickchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("log-level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func selectorFromFlags(c *cli.Command) engine.Selector {
	lvl := engine.LevelFromInt(int(c.Int("level")))
	if lvl == engine.LevelInvalid {
		lvl = engine.LevelDefault
	}
	if c.String("opponent") == "random" {
		return random.New()
	}
	return minimax.New(lvl)
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)
	g, err := gui.NewGUI(src.NewBuilderBoard(logger), logger)
	if err != nil {
		return err
	}
	if err := g.Run(); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func RunClickChess() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN format",
	}
	of := &cli.StringFlag{
		Name:  "opponent",
		Usage: "opponent policy: minimax or random",
		Value: "minimax",
	}
	lvf := &cli.IntFlag{
		Name:  "level",
		Usage: "search level 1..5",
		Value: 3,
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mode",
	}
	llf := &cli.StringFlag{
		Name:  "log-level",
		Usage: "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	cliff := []cli.Flag{ff, of, lvf, df, llf, cf}
	guiff := []cli.Flag{df, llf, cf}

	return (&cli.Command{
		Name:  "clickchess",
		Usage: "point and click chess game",
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					fen := c.String("fen")
					file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()
					gb := src.NewBuilderBoard(GetLogger(file, c))
					gb.SetHumanWhite(true)
					gb.SetSelector(selectorFromFlags(c))
					if fen != "" {
						if _, err := gb.CreateFromFEN(fen); err != nil {
							fmt.Printf("error invalid FEN: %v", err)
							return nil
						}
					} else {
						gb.CreateClassic()
					}

					clic.EnableANSI()
					cl := clic.NewCLI(gb, clic.PrintBoard)
					if err := cl.Run(); err != nil {
						fmt.Printf("error clickchess: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
