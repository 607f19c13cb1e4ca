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
	seed := flag.Int64("seed", 1, "Random seed for reproducible draws")
	sparse := flag.Bool("sparse", false, "Compare via the sparse encoding instead of the dense one")
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

	strands, err := template.LinkageEquilibriumChromosomes(rng, 4)
	if err != nil {
		log.Fatalln(err)
	}
	a1, b1, a2, b2 := strands[0], strands[1], strands[2], strands[3]

	var scores []uint8
	if *sparse {
		scores, err = genotypes.ChromwideIBS[uint8](
			genotypes.NewSparseGenotypedChromosome(a1),
			genotypes.NewSparseGenotypedChromosome(b1),
			genotypes.NewSparseGenotypedChromosome(a2),
			genotypes.NewSparseGenotypedChromosome(b2),
			genotypes.MissingIBS)
	} else {
		scores, err = genotypes.ChromwideIBS[uint8](a1, b1, a2, b2, genotypes.MissingIBS)
	}
	if err != nil {
		log.Fatalln(err)
	}

	for i, score := range scores {
		fmt.Printf("%s\t%d\n", template.Marker(i).Label, score)
	}
}
