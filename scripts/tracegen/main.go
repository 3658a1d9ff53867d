package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
)

func main() {
	hostFile := flag.String("host", "log_host.txt", "Output host log path")
	clientFile := flag.String("client", "log_client.txt", "Output client log path")
	steps := flag.Int("n", 600, "Number of timesteps to generate")
	bodies := flag.Int("b", 8, "Number of bodies per timestep")
	jitter := flag.Float64("jitter", 0.05, "Standard deviation of client position error")
	lag := flag.Int("lag", 3, "Trailing timesteps the client is missing")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	sigma := *jitter

	host, err := os.Create(*hostFile)
	if err != nil {
		log.Fatalf("Failed to create host log: %v", err)
	}
	defer host.Close()
	client, err := os.Create(*clientFile)
	if err != nil {
		log.Fatalf("Failed to create client log: %v", err)
	}
	defer client.Close()

	hw, cw := bufio.NewWriter(host), bufio.NewWriter(client)

	log.Printf("Generating %d timesteps of %d bodies into %s and %s...", *steps, *bodies, *hostFile, *clientFile)

	clientSteps := max(*steps-*lag, 0)
	for i := 0; i < *steps; i++ {
		fmt.Fprintf(hw, "timestep %d\n", i)
		if i < clientSteps {
			fmt.Fprintf(cw, "timestep %d\n", i)
		}

		// drift grows over time, then the client resyncs
		drift := float64(i%120) / 120
		for b := 0; b < *bodies; b++ {
			angle := float64(i)*0.05 + float64(b)*2*math.Pi/float64(*bodies)
			x, y := 10*math.Cos(angle), 10*math.Sin(angle)
			fmt.Fprintf(hw, "%.6f,%.6f\n", x, y)
			if i < clientSteps {
				cx := x + drift*rng.NormFloat64()*sigma
				cy := y + drift*rng.NormFloat64()*sigma
				fmt.Fprintf(cw, "%.6f,%.6f\n", cx, cy)
			}
		}
		fmt.Fprintln(hw)
		if i < clientSteps {
			fmt.Fprintln(cw)
		}
	}

	if err := hw.Flush(); err != nil {
		log.Fatalf("Failed to write host log: %v", err)
	}
	if err := cw.Flush(); err != nil {
		log.Fatalf("Failed to write client log: %v", err)
	}
	log.Println("Done.")
}
