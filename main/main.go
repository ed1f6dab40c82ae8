package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/bitspan"
)

// Profiling harness: hammer the accessor hot path and expose pprof.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	buf := make([]uint64, 1024)
	sp, err := bitspan.SpanOf(buf, 7, 61000)
	if err != nil {
		log.Fatal(err)
	}
	d := bitspan.Split[uint64](sp)
	var sink uint64
	for i := 0; i < 5_000_000; i++ {
		bitspan.StoreLE(d, bitspan.Lsb0{}, uint64(i), 61)
		sink += bitspan.LoadLE(d, bitspan.Lsb0{}, 61)
	}
	log.Printf("done sink=%d", sink)

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
