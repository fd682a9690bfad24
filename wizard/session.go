package wizard

import "github.com/hackovate/judging-portal/models"

// Session holds the identity of the person driving a judging flow. It is an
// explicit object handed to whatever needs it; logging out resets it to the
// empty state instead of leaving stale ambient globals behind.
type Session struct {
	user *models.User
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Login(user *models.User) {
	s.user = user
}

func (s *Session) Logout() {
	s.user = nil
}

func (s *Session) LoggedIn() bool {
	return s.user != nil
}

func (s *Session) User() *models.User {
	return s.user
}

// MaySelectEvaluator reports whether the session's user is allowed to score
// as the given evaluator. Judges may only score as themselves; admins may
// score as anyone.
func (s *Session) MaySelectEvaluator(evaluatorID int) bool {
	if s.user == nil {
		return false
	}
	if !s.user.IsJudge() {
		return true
	}
	return s.user.EvaluatorID != nil && *s.user.EvaluatorID == evaluatorID
}
