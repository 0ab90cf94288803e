package services

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
)

// DogImageService hands out curated Unsplash photos for the HTML pages
// and avoids repeating an image until the whole pool has been shown.
type DogImageService interface {
	UniqueImage(context string) string
	MultipleUniqueImages(count int, category string) []string
	BreedImage(breedInfo string) string
}

type dogImageService struct {
	log   *logger.Logger
	mu    sync.Mutex
	pools map[string][]string
	used  map[string]bool
}

func NewDogImageService(log *logger.Logger) DogImageService {
	return &dogImageService{
		log:  log.With("service", "DogImageService"),
		used: make(map[string]bool),
		pools: map[string][]string{
			"golden_retrievers": {
				"https://images.unsplash.com/photo-1552053831-71594a27632d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1517849845537-4d257902454a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1593134257782-e89567b7718a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			"border_collies": {
				"https://images.unsplash.com/photo-1551717743-49959800b1f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1605568427561-40dd23c2acea?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1583337130417-3346a1be7dee?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1587300003388-59208cc962cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			"german_shepherds": {
				"https://images.unsplash.com/photo-1589941013453-ec89f33b5e95?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1623387641168-d9803ddd3f35?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			"small_dogs": {
				"https://images.unsplash.com/photo-1534361960057-19889db9621e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1601758228041-f3b2795255f1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1543466835-00a7907e9de1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			"puppies": {
				"https://images.unsplash.com/photo-1477884213360-7e9d7dcc1e48?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1544717297-fa95b6ee9643?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			"mixed_breeds": {
				"https://images.unsplash.com/photo-1450778869180-41d0601e046e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1537151625747-768eb6cf92b2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1507146426996-ef05306b995a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
		},
	}
}

// UniqueImage returns an unused image for the given page context. The
// context only seeds pool preference; once a pool is spent any unused
// image is fair game, and a fully spent collection resets.
func (ds *dogImageService) UniqueImage(context string) string {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	lower := strings.ToLower(context)
	for pool := range ds.pools {
		if strings.Contains(lower, strings.TrimSuffix(pool, "s")) {
			if img := ds.pickLocked(pool); img != "" {
				return img
			}
		}
	}
	return ds.pickAnyLocked()
}

func (ds *dogImageService) MultipleUniqueImages(count int, category string) []string {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if img := ds.pickLocked(category); img != "" {
			out = append(out, img)
			continue
		}
		out = append(out, ds.pickAnyLocked())
	}
	return out
}

func (ds *dogImageService) BreedImage(breedInfo string) string {
	lower := strings.ToLower(breedInfo)
	pool := "mixed_breeds"
	switch {
	case containsAny(lower, "small", "chihuahua", "yorkie", "pug"):
		pool = "small_dogs"
	case containsAny(lower, "puppy", "young", "months"):
		pool = "puppies"
	case containsAny(lower, "golden", "retriever", "lab"):
		pool = "golden_retrievers"
	case containsAny(lower, "border", "collie"):
		pool = "border_collies"
	case containsAny(lower, "german", "shepherd", "large"):
		pool = "german_shepherds"
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if img := ds.pickLocked(pool); img != "" {
		return img
	}
	return ds.pickAnyLocked()
}

func (ds *dogImageService) pickLocked(pool string) string {
	images, ok := ds.pools[pool]
	if !ok {
		return ""
	}
	available := make([]string, 0, len(images))
	for _, img := range images {
		if !ds.used[img] {
			available = append(available, img)
		}
	}
	if len(available) == 0 {
		return ""
	}
	selected := available[rand.Intn(len(available))]
	ds.used[selected] = true
	return selected
}

func (ds *dogImageService) pickAnyLocked() string {
	var available []string
	var all []string
	for _, images := range ds.pools {
		for _, img := range images {
			all = append(all, img)
			if !ds.used[img] {
				available = append(available, img)
			}
		}
	}
	if len(available) == 0 {
		// Everything shown once; start over.
		ds.used = make(map[string]bool)
		available = all
	}
	if len(available) == 0 {
		return ""
	}
	selected := available[rand.Intn(len(available))]
	ds.used[selected] = true
	return selected
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
