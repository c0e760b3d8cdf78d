package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/buildbarn/bb-wslpath/pkg/program"
	"github.com/buildbarn/bb-wslpath/pkg/util"
	"github.com/buildbarn/bb-wslpath/pkg/wslpath"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	toWindows = flag.Bool("w", false, "Convert WSL paths to Windows paths")
	toWSL     = flag.Bool("u", false, "Convert Windows paths to WSL paths (the default)")
)

// exitCode distinguishes the two conversion failure modes, so that
// scripts calling this tool can tell them apart.
func exitCode(err error) int {
	if errors.Is(err, wslpath.ErrRelativePath) {
		return 2
	}
	if status.Code(err) == codes.Unimplemented {
		return 3
	}
	return 1
}

func convertPaths(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	flag.Parse()
	if *toWindows && *toWSL {
		return status.Error(codes.InvalidArgument, "Flags -w and -u are mutually exclusive")
	}
	convert := wslpath.WindowsToWSL
	if *toWindows {
		convert = wslpath.WSLToWindows
	}

	if args := flag.Args(); len(args) > 0 {
		for _, path := range args {
			converted, err := convert(path)
			if err != nil {
				return fmt.Errorf("failed to convert path %#v: %w", path, err)
			}
			fmt.Println(converted)
		}
		return nil
	}

	// Without arguments, convert one path per line read from
	// standard input.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := scanner.Text()
		converted, err := convert(path)
		if err != nil {
			return fmt.Errorf("failed to convert path %#v: %w", path, err)
		}
		fmt.Println(converted)
	}
	if err := scanner.Err(); err != nil {
		return util.StatusWrap(err, "Failed to read paths from standard input")
	}
	return nil
}

func main() {
	if err := program.RunLocal(context.Background(), convertPaths); err != nil {
		log.Print("Fatal error: ", err)
		os.Exit(exitCode(err))
	}
}
