package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/pedsim/genotypes"
)

func main() {
	path := flag.String("template", "chrom.template", "Filename of the genomeSIMLA chromosome template to process (local or gs://)")
	n := flag.Int("n", 10, "Number of individuals to simulate")
	seed := flag.Int64("seed", 1, "Random seed for reproducible draws")
	flag.Parse()

	var client *storage.Client
	if strings.HasPrefix(*path, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	template, err := genotypes.ReadGenomeSIMLATemplate(*path, client)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println(template)

	rng := rand.New(rand.NewSource(*seed))

	// Two strands per individual
	strands, err := template.LinkageEquilibriumChromosomes(rng, 2*(*n))
	if err != nil {
		log.Fatalln(err)
	}

	// Empirical minor-allele rate per marker across all simulated strands
	for i := 0; i < template.NMarkers(); i++ {
		minor := 0
		for _, strand := range strands {
			if strand[i] == 2 {
				minor++
			}
		}

		marker := template.Marker(i)
		fmt.Printf("%s\t%.4f cM\tfreq %.4f\tsimulated %.4f\n",
			marker.Label, marker.GeneticPosition, marker.Frequency,
			float64(minor)/float64(len(strands)))
	}

	log.Println("Simulated", *n, "individuals at", template.NMarkers(), "markers")
}
