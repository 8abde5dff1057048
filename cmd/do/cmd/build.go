package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

func BuildCmd() *cobra.Command {
	var goos, goarch, output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the server binary (runs gen first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildServer(goos, goarch, output)
		},
	}

	cmd.Flags().StringVar(&goos, "os", runtime.GOOS, "target GOOS")
	cmd.Flags().StringVar(&goarch, "arch", runtime.GOARCH, "target GOARCH")
	cmd.Flags().StringVarP(&output, "output", "o", "bin/server", "output path")
	return cmd
}

func buildServer(goos, goarch, output string) error {
	err := runGen()
	if err != nil {
		return err
	}

	fmt.Printf("==> Building %s (%s/%s)...\n", output, goos, goarch)
	build := exec.Command("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", output, "./cmd/server")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	build.Env = append(os.Environ(),
		"GOOS="+goos,
		"GOARCH="+goarch,
		"CGO_ENABLED=0",
	)
	err = build.Run()
	if err != nil {
		return fmt.Errorf("go build failed: %w", err)
	}

	fmt.Println("==> Done!", strings.TrimPrefix(output, "./"))
	return nil
}
