package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hackovate/judging-portal/services"
)

var standingsPushesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "judging_standings_pushes_total",
	Help: "Total number of standings broadcasts pushed to websocket clients.",
})

// StandingsPublisher recomputes the overall leaderboard after evaluation
// mutations and pushes it through the hub. It satisfies
// services.StandingsNotifier.
type StandingsPublisher struct {
	hub       *Hub
	standings services.StandingsService
	logger    *slog.Logger
}

func NewStandingsPublisher(hub *Hub, standings services.StandingsService, logger *slog.Logger) *StandingsPublisher {
	return &StandingsPublisher{
		hub:       hub,
		standings: standings,
		logger:    logger,
	}
}

// EvaluationsChanged runs the recompute off the caller's request path so
// evaluation handlers never wait on connected dashboards.
func (p *StandingsPublisher) EvaluationsChanged() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entries, err := p.standings.Leaderboard(ctx, nil, services.DefaultLeaderboardSize)
		if err != nil {
			p.logger.Error("failed to recompute standings for broadcast", slog.Any("error", err))
			return
		}
		p.hub.Broadcast(Message{Type: MessageStandingsUpdated, Payload: entries})
		standingsPushesTotal.Inc()
	}()
}
