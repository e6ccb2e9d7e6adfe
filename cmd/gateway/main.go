package main

import (
	"flag"
	"net/http"

	"github.com/sirupsen/logrus"

	"cipherstream/internal/gateway"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	mux := http.NewServeMux()
	mux.Handle("/chat", gateway.NewHandler(log))

	log.Infof("gateway listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
