package clipboard

import (
	"context"
	"runtime"

	"github.com/atotto/clipboard"

	"splitdiff/internal/util"
)

// CopyText puts text on the system clipboard. The native binding is
// preferred; headless setups without a clipboard provider fall back to
// the platform's command-line tool.
func CopyText(ctx context.Context, text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}

	switch runtime.GOOS {
	case "darwin":
		_, err := util.RunWithStdin(ctx, "", text, "pbcopy")
		return err
	case "linux":
		_, err := util.RunWithStdin(ctx, "", text, "xclip", "-selection", "clipboard")
		return err
	case "windows":
		_, err := util.RunWithStdin(ctx, "", text, "clip")
		return err
	default:
		return nil
	}
}
