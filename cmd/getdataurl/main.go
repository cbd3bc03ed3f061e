package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/getdataurl/go-dataurl/fetch"
)

var defaultTimeout = "30s"

var timeout = flag.String("timeout", getEnvOrDefault("FETCH_TIMEOUT", defaultTimeout), "HTTP client timeout (0 = no timeout)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-timeout duration] <url>\n", os.Args[0])
		os.Exit(2)
	}

	timeoutDuration, err := time.ParseDuration(*timeout)
	if err != nil {
		log.Fatal(err)
	}

	cl := &http.Client{Timeout: timeoutDuration}
	converter := fetch.NewConverterWithClient(cl)
	res, err := converter.Fetch(context.Background(), flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.String())
}

func getEnvOrDefault(key string, defaultValue string) string {
	ret := os.Getenv(key)
	if ret == "" {
		ret = defaultValue
	}
	return ret
}
