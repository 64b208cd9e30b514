package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"sectionizer/internal/config"
	"sectionizer/internal/frames"
	"sectionizer/internal/logging"
	"sectionizer/internal/media/ffprobe"
	"sectionizer/internal/sections"
)

func runCategorize(cmd *cobra.Command, ctx *commandContext, fileA, fileB string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	fps, err := resolveFPS(cmd, cfg, logger, fileA)
	if err != nil {
		return err
	}

	source := frames.NewFFmpeg(
		frames.WithBinary(cfg.Tools.FFmpeg),
		frames.WithSampleSize(cfg.Analysis.SampleWidth, cfg.Analysis.SampleHeight),
		frames.WithFPS(fps),
		frames.WithWindowSeconds(cfg.Analysis.WindowSeconds),
		frames.WithLogger(logger),
	)

	sectionizer := sections.New(source, logger, sections.Params{
		Radius:             cfg.Analysis.Radius,
		MaxGapSeconds:      cfg.Analysis.MaxGapSeconds,
		MinDurationSeconds: cfg.Analysis.MinDurationSeconds,
		FPS:                fps,
	})

	resultA, resultB, err := sectionizer.Categorize(cmd.Context(), fileA, fileB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSections(out, resultA)
	printSections(out, resultB)
	return nil
}

// resolveFPS honours a configured rate and otherwise probes the first file.
// Both files are decoded at the same rate so indices stay comparable across
// the two timelines.
func resolveFPS(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, path string) (int, error) {
	if cfg.Analysis.FPS > 0 {
		return cfg.Analysis.FPS, nil
	}

	probed, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, path)
	if err != nil {
		logger.Warn("frame rate probe failed, using fallback",
			logging.FieldSource, path,
			"fallback_fps", config.FallbackFPS,
			"error", err.Error(),
		)
		return config.FallbackFPS, nil
	}
	if fps := probed.FrameRate(); fps > 0 {
		return fps, nil
	}
	return config.FallbackFPS, nil
}

func printSections(out io.Writer, result sections.Result) {
	fmt.Fprintf(out, "Sections for %s\n", result.Target)
	for _, section := range result.Sections {
		fmt.Fprintf(out, "%s -> %s\n", formatTimestamp(section.Start), formatTimestamp(section.End))
	}
}

func formatTimestamp(seconds uint64) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
