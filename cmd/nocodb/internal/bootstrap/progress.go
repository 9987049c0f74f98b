// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bootstrap

import (
	"context"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar returns a spinner-style progress bar.  In verbose mode the
// bar is silenced so it does not fight with the debug log output.
func ProgressBar(ctx context.Context, lg *slog.Logger, opts ...progressbar.Option) *progressbar.ProgressBar {
	fullopts := append([]progressbar.Option{
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(8),
	}, opts...)

	pb := newProgressBar(progressbar.NewOptions(
		-1,
		fullopts...),
		lg.Enabled(ctx, slog.LevelDebug),
	)
	_ = pb.RenderBlank()
	return pb
}

func newProgressBar(pb *progressbar.ProgressBar, debug bool) *progressbar.ProgressBar {
	if debug {
		return progressbar.DefaultSilent(0)
	}
	return pb
}
