package domain

import "strings"

// User representa uma linha do arquivo users.csv
type User struct {
	UserID     int64
	Age        int
	Gender     string
	Location   string
	SignupDate string
	Interests  string // lista separada por vírgulas, como vem da origem
}

// interestPlaceholders são valores da origem que não representam um interesse real
var interestPlaceholders = map[string]struct{}{
	"nan":           {},
	"not-available": {},
}

// InterestList separa a lista de interesses, removendo vazios,
// marcadores de ausência e repetições (a ordem de inserção é mantida).
func (u User) InterestList() []string {
	interests := make([]string, 0)
	seen := make(map[string]struct{})
	for _, token := range strings.Split(u.Interests, ",") {
		interest := strings.TrimSpace(token)
		if interest == "" {
			continue
		}
		if _, placeholder := interestPlaceholders[strings.ToLower(interest)]; placeholder {
			continue
		}
		if _, dup := seen[interest]; dup {
			continue
		}
		seen[interest] = struct{}{}
		interests = append(interests, interest)
	}
	return interests
}
