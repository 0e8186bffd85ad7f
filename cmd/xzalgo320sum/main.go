// Command xzalgo320sum computes and checks XzalgoChain-320 digests of
// files, standard input, or literal strings.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xzray/xzalgochain/xzalgo320"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xzalgo320sum: ")

	app := cli.NewApp()
	app.Name = "xzalgo320sum"
	app.Usage = "compute and check XzalgoChain-320 message digests"
	app.ArgsUsage = "[FILE ...]"
	app.Version = xzalgo320.Version()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "string, i",
			Usage: "hash `TEXT` instead of files",
		},
		cli.StringFlag{
			Name:  "check, c",
			Usage: "compare the computed digest against `DIGEST` (80 hex characters)",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "print digests only, without names",
		},
		cli.BoolFlag{
			Name:  "verbose, V",
			Usage: "report engine and platform information",
		},
		cli.BoolFlag{
			Name:  "force-scalar, f",
			Usage: "disable the vector engine",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("force-scalar") {
		xzalgo320.ForceScalar(true)
	}
	if c.Bool("verbose") {
		log.Printf("version %s, %s engine, %s/%s",
			xzalgo320.Version(), xzalgo320.EngineName(), runtime.GOOS, runtime.GOARCH)
	}

	check := strings.ToLower(c.String("check"))
	if check != "" {
		if len(check) != 2*xzalgo320.Size {
			return errors.Errorf("check digest must be %d hex characters", 2*xzalgo320.Size)
		}
		if _, err := hex.DecodeString(check); err != nil {
			return errors.Wrap(err, "check digest")
		}
	}

	if text := c.String("string"); text != "" {
		sum := xzalgo320.Hash([]byte(text))
		return report(c, hex.EncodeToString(sum[:]), fmt.Sprintf("%q", text), check)
	}

	names := []string(c.Args())
	if len(names) == 0 {
		names = []string{"-"}
	}
	if check != "" && len(names) > 1 {
		return errors.New("check mode takes a single input")
	}

	var failed bool
	for _, name := range names {
		sum, err := digestFile(name)
		if err != nil {
			return err
		}
		if err := report(c, sum, name, check); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}

// digestFile hashes a named file, or standard input for "-".
func digestFile(name string) (string, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	d := xzalgo320.New()
	if _, err := io.Copy(d, bufio.NewReaderSize(r, 1<<16)); err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	sum, err := d.Finalize()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}

func report(c *cli.Context, sum, name, check string) error {
	if check != "" {
		if sum == check {
			fmt.Printf("%s: OK\n", name)
			return nil
		}
		fmt.Printf("%s: FAILED\n", name)
		return errors.New("digest mismatch")
	}
	if c.Bool("quiet") {
		fmt.Println(sum)
	} else {
		fmt.Printf("%s  %s\n", sum, name)
	}
	return nil
}
