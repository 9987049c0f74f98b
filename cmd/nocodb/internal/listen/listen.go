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

// Package listen implements the "nocodb listen" webhook receiver command.
package listen

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var CmdListen = &base.Command{
	UsageLine:  "nocodb listen [flags]",
	Short:      "receive webhook calls from NocoDB",
	FlagMask:   base.OmitAuthFlags | base.OmitBaseFlag,
	PrintFlags: true,
	Run:        runListen,
	Long: `
# Listen Command

Listen starts a local HTTP server that receives webhook calls from a NocoDB
instance and prints each payload as a JSON line.  Point a NocoDB webhook at
http://<your-host>:<port>/webhook to see events as they happen.

The server runs until interrupted.
`,
}

var (
	addr    string
	maxBody int64
)

func init() {
	CmdListen.Flag.StringVar(&addr, "addr", "127.0.0.1:8484", "`address` to listen on")
	CmdListen.Flag.Int64Var(&maxBody, "max-body", 1<<20, "maximum accepted payload size in `bytes`")
}

func runListen(ctx context.Context, cmd *base.Command, args []string) error {
	out, err := bootstrap.Output()
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	defer out.Close()

	lg := cfg.Log
	enc := json.NewEncoder(out)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/webhook", webhookHandler(enc, lg, maxBody))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.InfoContext(ctx, "webhook receiver listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		lg.InfoContext(ctx, "shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		base.SetExitStatus(base.SApplicationError)
		return err
	}
}

// webhookHandler decodes the webhook payload and re-encodes it onto enc as
// a single JSON line.
func webhookHandler(enc *json.Encoder, lg *slog.Logger, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var payload map[string]any
		dec := json.NewDecoder(io.LimitReader(req.Body, maxBody))
		if err := dec.Decode(&payload); err != nil {
			lg.WarnContext(req.Context(), "invalid webhook payload", "error", err)
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
		if err := enc.Encode(payload); err != nil {
			lg.ErrorContext(req.Context(), "write", "error", err)
		}
		w.WriteHeader(http.StatusOK)
	}
}
