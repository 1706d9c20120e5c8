package player

import (
	"database/sql"
	"fmt"

	"blackjack/internal/game"
)

// Player holds the running tally of a chat. Individual rounds are not stored.
type Player struct {
	ChatID int64
	Wins   int
	Losses int
	Ties   int
	Rounds int
}

type Stats struct {
	ChatID  int64
	Wins    int
	Rounds  int
	WinRate float64
}

type Repository interface {
	GetOrCreate(chatID int64) (*Player, error)
	Save(player *Player) error
	Record(chatID int64, outcome game.Outcome) (*Player, error)
	GetTopByWins(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT wins, losses, ties, rounds
		FROM players WHERE chat_id = ?
	`, chatID).Scan(&player.Wins, &player.Losses, &player.Ties, &player.Rounds)

	if err == sql.ErrNoRows {
		_, err = r.db.Exec(`INSERT INTO players (chat_id) VALUES (?)`, chatID)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, ties = ?, rounds = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Wins, player.Losses, player.Ties, player.Rounds, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// Record adds one resolved round to the chat's tally.
func (r *SQLiteRepository) Record(chatID int64, outcome game.Outcome) (*Player, error) {
	p, err := r.GetOrCreate(chatID)
	if err != nil {
		return nil, err
	}
	p.Add(outcome)
	if err := r.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepository) GetTopByWins(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, wins, rounds
		FROM players
		WHERE rounds > 0
		ORDER BY wins DESC, CAST(wins AS REAL) / rounds DESC, chat_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Wins, &s.Rounds); err != nil {
			return nil, err
		}
		if s.Rounds > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (p *Player) Add(outcome game.Outcome) {
	switch outcome {
	case game.Win:
		p.Wins++
	case game.Lose:
		p.Losses++
	case game.Tie:
		p.Ties++
	default:
		return
	}
	p.Rounds++
}

func (p *Player) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Rounds) * 100
}
