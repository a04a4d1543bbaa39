package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/docrender"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/executor"
	"github.com/nbroch/skema/internal/host"
	"github.com/nbroch/skema/internal/journal"
	"github.com/nbroch/skema/internal/watcher"
)

var (
	serveStdio     bool
	serveListen    string
	serveJournal   string
	serveNoJournal bool
	serveNoSave    bool
	serveWatch     bool
	serveDebug     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve <document>",
	Short: "Host a schema document for an editor frontend",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveStdio, "stdio", false, "Serve over stdin/stdout (newline-delimited JSON)")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "WebSocket listen address (host:port)")
	serveCmd.Flags().StringVar(&serveJournal, "journal", "", "Journal database path (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoJournal, "no-journal", false, "Disable command journaling")
	serveCmd.Flags().BoolVar(&serveNoSave, "no-save", false, "Keep edits in memory; do not write the document back")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the document when the file changes on disk")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Log protocol traffic to stderr")
	rootCmd.AddCommand(serveCmd)
}

// sessionRecorder journals commands and persists the document after
// each successful one. It keeps the host package free of file concerns.
type sessionRecorder struct {
	journal host.Recorder
	save    func() error
}

func (r *sessionRecorder) Record(c command.Command, resp command.Response) error {
	if r.journal != nil {
		if err := r.journal.Record(c, resp); err != nil {
			return err
		}
	}
	if resp.Success && r.save != nil {
		if err := r.save(); err != nil {
			// The tree stays authoritative in memory; surface the write
			// failure without killing the session.
			fmt.Fprintf(os.Stderr, "skm: save failed: %v\n", err)
		}
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	path := args[0]

	tree, code, err := loadDocumentFile(path)
	if err != nil {
		return handleError(code, err, fmt.Sprintf("Run 'skm doc init %s' to create it", path))
	}

	cfg := getConfig()
	debug := serveDebug || cfg.Server.Debug
	exec := executor.New(tree)

	rec := &sessionRecorder{}
	if !serveNoJournal {
		jpath := resolveJournalPath(serveJournal)
		j, rebuilt, err := journal.OpenWithRebuild(jpath)
		if err != nil {
			return handleError(ErrJournalError, err, "Pass --no-journal to serve without auditing")
		}
		defer j.Close()
		rec.journal = j
		if rebuilt {
			fmt.Fprintf(os.Stderr, "skm: journal schema changed, rebuilt %s\n", jpath)
		}
	}
	if !serveNoSave {
		rec.save = func() error {
			return document.SaveSnapshot(path, exec.Snapshot())
		}
	}

	h := host.New(host.Config{
		Executor: exec,
		Options:  cfg.Diagram.Options(),
		Recorder: rec,
		Enrich:   docrender.Enrich,
		Debug:    debug,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		w, err := watcher.New(watcher.Config{
			Path: path,
			OnReload: func(t *document.Tree, err error) {
				if err != nil {
					fmt.Fprintf(os.Stderr, "skm: reload failed: %v\n", err)
					return
				}
				h.ReplaceTree(t)
			},
			Debug: debug,
		})
		if err != nil {
			return handleError(ErrServeFailed, err, "")
		}
		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "skm: watcher stopped: %v\n", err)
			}
		}()
	}

	if serveStdio {
		// stdout carries protocol messages only; anything else goes to stderr.
		s := host.NewStdio(h)
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return handleError(ErrServeFailed, err, "")
		}
		return nil
	}

	listen := serveListen
	if listen == "" {
		listen = cfg.Server.Listen
	}
	if listen == "" {
		return handleErrorMsg(ErrListenInvalid,
			"no listen address configured",
			"Pass --listen host:port or set server.listen in config.toml")
	}

	mux := http.NewServeMux()
	mux.Handle("/", host.NewWebSocket(h))
	srv := &http.Server{Addr: listen, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "skm: serving %s on ws://%s\n", path, listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return handleError(ErrServeFailed, err, "")
	}
	return nil
}
