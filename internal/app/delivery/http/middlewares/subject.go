package middlewares

import (
	"context"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/exceptions"
	"lupira-service/internal/pkg/utils"
	"net/http"
)

// RequireSubject reads the subject identifier resolved by the upstream auth
// gateway. Identity verification itself happens before requests reach this
// service; a request without the header never belonged to a logged-in
// subject and is rejected outright.
func (m *Middlewares) RequireSubject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subjectID := r.Header.Get(constvars.HeaderXSubjectID)
		if subjectID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSubjectID(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SUBJECT_ID_KEY, subjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
