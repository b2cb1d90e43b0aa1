package main

import (
	"github.com/spf13/cobra"

	"illuminate/internal/service"
)

var serveFlags struct {
	listen string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP illumination API",
	Long: `Serves the illumination API over HTTP: POST /v1/illuminate runs a cycle,
the /v1/analytics endpoints aggregate recorded runs, and /metrics exposes
prometheus metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.listen, "listen", "", "Listen address (default :8080 or profile value)")
}

func runServe(_ *cobra.Command, _ []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	eng, registry := buildEngine(p)
	st, err := openStore(p)
	if err != nil {
		return err
	}
	defer st.Close()

	addr := serveFlags.listen
	if addr == "" {
		addr = p.Addr()
	}
	return service.NewServer(eng, registry, st).ListenAndServe(addr)
}
