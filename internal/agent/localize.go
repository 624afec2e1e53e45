package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/quizchat/internal/progress"
	"github.com/abhisek/quizchat/internal/translate"
)

// LocalizedRecommendation is NextDifficulty with its text translated into
// language. Without a translator, for English, or when translation fails,
// the English recommendation is returned.
func (a *Agent) LocalizedRecommendation(ctx context.Context, subject progress.Subject, current progress.Difficulty, language string) Recommendation {
	rec := a.NextDifficulty(subject, current)
	if a.translator == nil || language == "" || language == translate.English {
		return rec
	}

	texts := make([]string, 0, 2+len(rec.SuggestedTopics)+len(rec.ReviewTopics))
	texts = append(texts, rec.Reason, rec.Encouragement)
	texts = append(texts, rec.SuggestedTopics...)
	texts = append(texts, rec.ReviewTopics...)

	out, err := translate.Batch(ctx, a.translator, texts, translate.English, language)
	if err != nil {
		a.log.Warn("translation failed; using English",
			zap.String("language", language), zap.Error(err))
		return rec
	}

	loc := rec
	loc.Reason, loc.Encouragement = out[0], out[1]
	out = out[2:]
	loc.SuggestedTopics = out[:len(rec.SuggestedTopics)]
	loc.ReviewTopics = out[len(rec.SuggestedTopics):]
	return loc
}
