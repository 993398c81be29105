package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/buildmode/floorgrid/internal/config"
	"github.com/buildmode/floorgrid/internal/persist"
	"github.com/buildmode/floorgrid/internal/web/views"
	"github.com/buildmode/floorgrid/internal/ws"
)

func main() {
	cfg := config.Load()
	logger := log.Default()

	lots, err := LoadLots(cfg.LotsFile)
	if err != nil {
		log.Fatalf("load lots: %v", err)
	}
	catalog, err := LoadObjectCatalog("content/objects.json")
	if err != nil {
		log.Fatalf("load object catalog: %v", err)
	}

	store, err := persist.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	hub := ws.NewHub()

	registry := NewFloorRegistry()
	for i := range cfg.FloorCount {
		floor := NewFloorGrid(i, logger, hub, cfg.Debug)
		if err := floor.Initialize(lots, cfg.LotKey, float64(i)*cfg.FloorHeight, catalog); err != nil {
			log.Fatalf("initialize floor %d: %v", i, err)
		}
		tiles, _ := floor.Tiles()
		if err := store.LoadFloor(i, tiles); err != nil {
			log.Printf("floor %d starts empty: %v", i, err)
		}
		registry.Add(floor)
		if i > 0 {
			registry.Link(i-1, i)
		}
	}

	srv := &server{
		registry:    registry,
		broadcaster: hub,
		log:         logger,
		store:       store,
	}

	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir("internal/web/static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				srv.handleIntent(data)
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		floor, ok := registry.Get(0)
		if !ok {
			http.Error(w, "no floors configured", http.StatusInternalServerError)
			return
		}
		snapshot, err := floor.Snapshot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := views.IndexPage(snapshot).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
