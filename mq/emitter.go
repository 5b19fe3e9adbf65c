package mq

import (
	"context"
	"encoding/json"
	"log"

	"kirana/models"
	"kirana/rdx"
)

const (
	channel = "catalog-events"

	// ProductTitleIndex is the redis hash of product id -> title kept
	// current by the worker and read by the search package.
	ProductTitleIndex = "search:products:titles"
)

// Emit publishes a catalog-change event. Emission is best-effort: a
// publish failure only costs cache freshness, never the write itself.
func Emit(ctx context.Context, event models.Index) {
	if rdx.Conn == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("mq marshal: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq publish: %v", err)
	}
}

// StartCatalogWorker consumes catalog events, invalidating the list
// caches and keeping the product title index in step with the store.
// Runs until ctx is cancelled; meant to be launched as a goroutine.
func StartCatalogWorker(ctx context.Context) {
	if rdx.Conn == nil {
		return
	}
	sub := rdx.Conn.Subscribe(ctx, channel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var event models.Index
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("mq worker parse: %v", err)
				continue
			}
			apply(ctx, event)
		}
	}
}

func apply(ctx context.Context, event models.Index) {
	switch event.EntityType {
	case "category":
		rdx.RdxDel(ctx, "categories")
	case "product":
		rdx.RdxDel(ctx, "products")
		switch event.Method {
		case "create", "update":
			if event.Title != "" {
				rdx.RdxHSet(ctx, ProductTitleIndex, event.EntityID, event.Title)
			}
		case "delete":
			rdx.RdxHDel(ctx, ProductTitleIndex, event.EntityID)
		}
	default:
		log.Printf("mq worker: unknown entity type %q", event.EntityType)
	}
}
