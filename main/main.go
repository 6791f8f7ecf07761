package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixcap"
	"github.com/rawbytedev/fixcap/pkg/fixstr"
)

// Drives the containers through their mutation surface and writes a
// heap profile. Everything is preallocated, so the profile should show
// nothing attributable to the loop.
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

	v := fixcap.New[int64](256)
	line := fixstr.New(128)
	for i := 0; i < 10000; i++ {
		for !v.IsFull() {
			_ = v.Push(int64(i))
		}
		_ = v.Insert(0, 1, 2, 3) // full: reported, nothing grows
		v.Delete(0, v.Len()/2)
		_, _ = v.Pop()
		v.Clear()

		line.Clear()
		_ = line.Append("iter=")
		_ = line.AppendInt(int64(i), 10)
		_ = line.Append(" even=")
		_ = line.AppendBool(i%2 == 0)
		_ = line.Replace(0, 4, "loop")
	}
	log.Printf("final line: %s", line.String())

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
