package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/32bitkid/swdraw"
	"github.com/32bitkid/swdraw/charset"
	"github.com/32bitkid/swdraw/pcx"
	"github.com/32bitkid/swdraw/resource"
	"github.com/32bitkid/swdraw/screen"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

const (
	defaultWidth  = 320
	defaultHeight = 240
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// newCache opens the asset sources named by the global flags. The pack,
// when given, is searched before the base directory.
func newCache(c *cli.Context, logger *log.Logger) (*resource.Cache, func() error, error) {
	var sources []resource.Source
	closer := func() error { return nil }

	if file := c.String("pack"); file != "" {
		p, err := resource.OpenPack(file)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, p)
		closer = p.Close
	}
	sources = append(sources, resource.Dir(c.String("base")))

	return resource.NewCache(nil, logger, sources...), closer, nil
}

func newCompositor(c *cli.Context, video swdraw.Video) (*swdraw.Compositor, func() error, error) {
	logger := newLogger(c)
	cache, closer, err := newCache(c, logger)
	if err != nil {
		return nil, nil, err
	}
	retexture := c.Bool("retexture")
	return swdraw.New(video, cache, swdraw.Options{
		Logger:      logger,
		Retexturing: func() bool { return retexture },
	}), closer, nil
}

func writePNG(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePCX(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := pcx.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	app := cli.NewApp()

	app.Name = "swdraw"
	app.Usage = "Software compositor for palette-indexed screens"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "base",
			EnvVars: []string{"SWDRAW_BASE"},
			Value:   cwd,
			Usage:   "directory holding pics/ and other assets",
		},
		&cli.StringFlag{
			Name:    "pack",
			EnvVars: []string{"SWDRAW_PACK"},
			Usage:   "asset pack database searched before the base directory",
		},
		&cli.BoolFlag{
			Name:    "retexture",
			EnvVars: []string{"SWDRAW_RETEXTURE"},
			Usage:   "smooth stretched pictures with scale2x/scale3x",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Run a draw script and save the screen as PNG",
			Description: "",
			ArgsUsage:   "SCRIPT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Value:   "screen.png",
					Usage:   "output file",
				},
				&cli.IntFlag{
					Name:  "width",
					Value: defaultWidth,
					Usage: "screen width",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: defaultHeight,
					Usage: "screen height",
				},
				&cli.BoolFlag{
					Name:  "crt",
					Usage: "simulate a CRT display",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				steps, err := parseScript(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				frame := screen.NewFrame(c.Int("width"), c.Int("height"), nil)
				comp, closer, err := newCompositor(c, frame)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := comp.InitCharset(); err != nil {
					log.Fatal(err)
				}

				for _, st := range steps {
					st.run(comp, frame.Surface())
				}

				var out image.Image = frame.Surface().Image()
				if c.Bool("crt") {
					out = screen.RenderToCRT(frame.Surface())
				}
				if err := writePNG(c.String("out"), out); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "size",
			Usage:       "Print the size of a picture",
			Description: "",
			ArgsUsage:   "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				comp, closer, err := newCompositor(c, screen.NewFrame(1, 1, nil))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				w, h := comp.GetPictureSize(c.Args().First())
				fmt.Printf("%d %d\n", w, h)

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert an image to PCX",
			Description: "",
			ArgsUsage:   "IN OUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				m, format, err := image.Decode(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				newLogger(c).Printf("converting %s %s", format, m.Bounds().Size())

				if err := writePCX(c.Args().Get(1), m); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "charset",
			Usage:       "Build a character sheet from a TrueType font",
			Description: "",
			ArgsUsage:   "OUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "font",
					Usage: "TrueType font file (default Go Mono)",
				},
				&cli.IntFlag{
					Name:  "color",
					Value: 15,
					Usage: "palette index of glyph pixels",
				},
				&cli.IntFlag{
					Name:  "alt-color",
					Usage: "palette index of alternate glyphs in the upper half",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				ft, err := charset.LoadFont(c.String("font"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				sheet := charset.Build(ft, charset.Options{
					Color:    uint8(c.Int("color")),
					AltColor: uint8(c.Int("alt-color")),
				})
				if err := writePCX(c.Args().First(), sheet); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "pack",
			Usage:       "Import a directory of assets into the pack database",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				if c.String("pack") == "" {
					return cli.NewExitError("no --pack database given", 1)
				}

				p, err := resource.OpenPack(c.String("pack"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer p.Close()

				if err := importDir(p, c.Args().First(), newLogger(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func importDir(p *resource.Pack, dir string, logger *log.Logger) error {
	return filepath.Walk(dir, func(file string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		logger.Printf("importing %s", name)
		return p.Import(name, f, resource.MethodLZW)
	})
}
