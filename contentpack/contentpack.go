// Package contentpack loads the raw material for a render batch: the quotes
// file and the video and music libraries, and assigns one of each to every
// output.
package contentpack

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"quotereel/models"
)

// Quote is one quotable line and who said it.
type Quote struct {
	Text        string
	Attribution string
}

// Pack holds everything a render batch draws from.
type Pack struct {
	Quotes []Quote
	Videos []models.MediaAsset
	Songs  []models.MediaAsset
}

// Assignment pairs a quote with the media chosen for its video.
type Assignment struct {
	Quote Quote
	Video models.MediaAsset
	Song  models.MediaAsset
}

// Load reads the quotes file and discovers the media libraries.
//
// The quotes file is a JSON array of objects with "text" and "author"
// fields. Every library must contain at least one usable file; an empty
// library is a setup error worth failing loudly on.
func Load(quotesPath, videoDir, audioDir string) (*Pack, error) {
	quotes, err := loadQuotes(quotesPath)
	if err != nil {
		return nil, err
	}

	videos, err := discover(videoDir, "*.mp4", models.AssetVideo)
	if err != nil {
		return nil, fmt.Errorf("no videos: %w", err)
	}
	songs, err := discover(audioDir, "*.mp3", models.AssetAudio)
	if err != nil {
		return nil, fmt.Errorf("no songs: %w", err)
	}

	return &Pack{Quotes: quotes, Videos: videos, Songs: songs}, nil
}

func loadQuotes(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("quotes file %s is not valid JSON", path)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("quotes file %s must hold a JSON array", path)
	}

	quotes := lo.FilterMap(parsed.Array(), func(entry gjson.Result, _ int) (Quote, bool) {
		text := entry.Get("text").String()
		if text == "" {
			return Quote{}, false
		}
		return Quote{Text: text, Attribution: entry.Get("author").String()}, true
	})

	if len(quotes) == 0 {
		return nil, fmt.Errorf("quotes file %s holds no usable quotes", path)
	}
	return quotes, nil
}

func discover(dir, pattern string, kind models.AssetKind) ([]models.MediaAsset, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s files in %s", pattern, dir)
	}

	assets := make([]models.MediaAsset, 0, len(matches))
	for _, path := range matches {
		asset, err := models.NewMediaAsset(path, kind)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// Assign picks count quote/video/song triples.
//
// Media is shuffled once per batch and then handed out round-robin, so a
// small library still spreads evenly across a large batch instead of
// repeating one file. The seed makes a batch reproducible.
func (p *Pack) Assign(count int, seed int64) []Assignment {
	rng := rand.New(rand.NewSource(seed))

	quotes := shuffled(rng, p.Quotes)
	videos := shuffled(rng, p.Videos)
	songs := shuffled(rng, p.Songs)

	return lo.Times(count, func(i int) Assignment {
		return Assignment{
			Quote: quotes[i%len(quotes)],
			Video: videos[i%len(videos)],
			Song:  songs[i%len(songs)],
		}
	})
}

func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
