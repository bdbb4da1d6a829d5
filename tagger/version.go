package tagger

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/az-ai-labs/jlexan/lexerrors"
)

// Version runs the configured tagger binary's --version subcommand and
// returns its trimmed stdout, for use in a resource version report.
func (t *Tagger) Version(ctx context.Context) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, t.cfg.BinaryPath, "--version")
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", lexerrors.NewResourceLoadError("tagger binary", t.cfg.BinaryPath, err)
	}

	return strings.TrimSpace(out.String()), nil
}
