package memorableid_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

func BenchmarkGenerate(b *testing.B) {
	presets := []struct {
		name string
		cfg  memorableid.Config
	}{
		{"DescriptiveAnimal", memorableid.DescriptiveAnimal()},
		{"ColourfulAnimal", memorableid.ColourfulAnimal()},
		{"DescriptiveColourfulAnimal", memorableid.DescriptiveColourfulAnimal()},
		{"Joined", memorableid.DescriptiveColourfulAnimal().JoiningWith("-")},
	}

	for _, p := range presets {
		b.Run(p.name, func(b *testing.B) {
			gen := memorableid.MustNew(p.cfg.AllowingDuplicates())
			b.ReportAllocs()
			for b.Loop() {
				_, _ = gen.Generate()
			}
		})
	}
}

func BenchmarkListCount(b *testing.B) {
	all := wordlist.All()
	for n := 1; n <= 5; n++ {
		b.Run(all[n-1].String(), func(b *testing.B) {
			gen := memorableid.MustNew(memorableid.Using(all[:n]...).AllowingDuplicates())
			b.ReportAllocs()
			for b.Loop() {
				_, _ = gen.Generate()
			}
		})
	}
}

func BenchmarkDuplicateTracking(b *testing.B) {
	gen := memorableid.MustNew(memorableid.Using(wordlist.Adjectives, wordlist.Colours, wordlist.Animals, wordlist.Objects))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = gen.Generate()
	}
}

func BenchmarkValidatorRejection(b *testing.B) {
	b.Run("AcceptFirst", func(b *testing.B) {
		gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AllowingDuplicates())
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.GenerateValid(func(string) bool { return true })
		}
	})

	b.Run("RejectMany", func(b *testing.B) {
		gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AllowingDuplicates())
		count := 0
		b.ReportAllocs()
		for b.Loop() {
			count = 0
			_, _ = gen.GenerateValid(func(string) bool {
				count++
				// accept every 5th candidate
				return count%5 == 0
			})
		}
	})
}

func BenchmarkGenerateAsync(b *testing.B) {
	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal().AllowingDuplicates())
	accept := memorableid.ValidatorFunc(func(context.Context, string) (bool, error) { return true, nil })
	b.ReportAllocs()
	for b.Loop() {
		_, _ = gen.GenerateAsync(context.Background(), accept).Await()
	}
}

func BenchmarkConcurrentGeneration(b *testing.B) {
	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal().AllowingDuplicates())
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = gen.Generate()
		}
	})
}
