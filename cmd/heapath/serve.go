package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/k0kubun/go-ansi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/heapath/graphio"
	"github.com/katalvlaran/heapath/rest"
	"github.com/katalvlaran/heapath/rest/service"
	"github.com/katalvlaran/heapath/snapshot"
)

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	dir := fs.String("db", "heapathDB", "snapshot store directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no fixture files given")
	}

	store, err := snapshot.Open(*dir)
	if err != nil {
		return err
	}
	defer store.Close()

	bar := progressbar.NewOptions(fs.NArg(),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]importing graphs...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	ctx := context.Background()
	var failed int
	for _, path := range fs.Args() {
		doc, err := graphio.LoadFile(path)
		if err == nil {
			err = store.Put(ctx, doc)
		}
		if err != nil {
			glog.Warningf("import %s: %v", path, err)
			failed++
		} else {
			glog.V(1).Infof("imported %s as %q", path, doc.Name)
		}
		_ = bar.Add(1)
	}
	fmt.Println()

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, fs.NArg())
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	listenAddr := fs.String("listen", ":5000", "server listen address")
	dir := fs.String("db", "heapathDB", "snapshot store directory")
	memory := fs.Bool("memory", false, "keep the store in memory and preload the sample graph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []snapshot.Option
	if *memory {
		opts = append(opts, snapshot.WithInMemory())
	}
	store, err := snapshot.Open(*dir, opts...)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *memory {
		if err = store.Put(ctx, graphio.Sample()); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	r := rest.NewRouter(service.NewGraphService(store), reg, middleware.Logger)
	srv := &http.Server{Addr: *listenAddr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		glog.Infof("server started at %s", *listenAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err = <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		glog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
