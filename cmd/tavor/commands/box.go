package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/storage/io"
	"github.com/tavor-dev/tavor-go/internal/utils/metadata"
)

// boxFlags are the box definition flags shared by the commands that create boxes.
type boxFlags struct {
	cpu           int
	mibRAM        int
	timeout       int
	metadataSpecs []string
	configFile    string
}

func (b *boxFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("cpu", "Number of CPUs (0 uses the service default).").IntVar(&b.cpu)
	cmd.Flag("mib-ram", "Memory in MiB (0 uses the service default).").IntVar(&b.mibRAM)
	cmd.Flag("timeout", "Box lifetime in seconds (0 uses the default).").IntVar(&b.timeout)
	cmd.Flag("metadata", "Box metadata (KEY=VALUE). Can be repeated.").Short('m').StringsVar(&b.metadataSpecs)
	cmd.Flag("file", "Path to a YAML box definition, flags override its values.").Short('f').StringVar(&b.configFile)
}

// boxConfig returns the box definition from the file and the flags.
func (b boxFlags) boxConfig(ctx context.Context) (model.BoxConfig, error) {
	var cfg model.BoxConfig
	if b.configFile != "" {
		configPath := b.configFile
		if !filepath.IsAbs(configPath) {
			absPath, err := filepath.Abs(configPath)
			if err != nil {
				return model.BoxConfig{}, fmt.Errorf("could not resolve box config path: %w", err)
			}
			configPath = absPath
		}

		configRepo := io.NewBoxConfigYAMLRepository(os.DirFS("/"))
		var err error
		cfg, err = configRepo.GetBoxConfig(ctx, configPath[1:])
		if err != nil {
			return model.BoxConfig{}, fmt.Errorf("could not load box config: %w", err)
		}
	}

	if b.cpu != 0 {
		cpu := b.cpu
		cfg.CPU = &cpu
	}
	if b.mibRAM != 0 {
		mibRAM := b.mibRAM
		cfg.MiBRAM = &mibRAM
	}
	if b.timeout != 0 {
		timeout := b.timeout
		cfg.Timeout = &timeout
	}

	cliMD, err := metadata.ParseSpecs(b.metadataSpecs)
	if err != nil {
		return model.BoxConfig{}, fmt.Errorf("invalid --metadata value: %w", err)
	}
	cfg.Metadata = metadata.Merge(cfg.Metadata, cliMD)

	return cfg, nil
}
