package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cafefinder/config"
	httpapi "cafefinder/internal/api/http"
	"cafefinder/internal/catalog"
	"cafefinder/internal/service"
	"cafefinder/internal/storage"
)

const favouritesTopic = "favourites"

func buildHandler(store *catalog.Store, publisher service.FavouritePublisher, popularity service.PopularityStore) http.Handler {
	cafeSvc := service.NewCafeService(store, publisher)
	qr := service.DefaultQRGenerator{BaseURL: config.BaseURL("http://localhost")}
	handler := httpapi.NewHandler(cafeSvc, popularity, qr)
	return httpapi.NewRouter(handler)
}

func main() {
	store := catalog.NewStore(catalog.DefaultCatalog())

	var publisher service.FavouritePublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter(favouritesTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("[cafe-svc] KAFKA_BROKER not set, favourite events disabled")
	}

	var popularity service.PopularityStore
	if os.Getenv("REDIS_HOST") != "" {
		client := config.MustInitRedis()
		defer client.Close()
		popularity = storage.NewPopularityCounter(client)
	} else {
		log.Println("[cafe-svc] REDIS_HOST not set, popularity analytics disabled")
	}

	if publisher != nil && popularity != nil {
		consumer := service.NewConsumer(config.NewKafkaReader(favouritesTopic, "cafe-svc-popularity"), popularity)
		go consumer.Start(context.Background())
	}

	httpapi.StartServer(config.Port(":8080"), buildHandler(store, publisher, popularity))
}
