package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
)

// Router wires every route. Non-auth API routes sit behind the bearer
// middleware; CORS wraps the whole tree.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods("GET")

	// public auth endpoints
	r.HandleFunc("/api/auth/signup", s.handleSignUp).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/signin", s.handleSignIn).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/reset-password", s.handleResetPassword).Methods("POST", "OPTIONS")

	// everything else requires a session
	p := r.PathPrefix("/api").Subrouter()
	p.Use(auth.Middleware(s.JWTSecret))

	p.HandleFunc("/auth/signout", s.handleSignOut).Methods("POST", "OPTIONS")
	p.HandleFunc("/auth/profile", s.handleUpdateAccount).Methods("PUT", "OPTIONS")

	p.HandleFunc("/profile", s.handleGetProfile).Methods("GET", "OPTIONS")
	p.HandleFunc("/profile", s.handleSaveProfile).Methods("PUT", "OPTIONS")
	p.HandleFunc("/profile/wizard", s.handleWizardState).Methods("GET", "OPTIONS")
	p.HandleFunc("/profile/advance", s.handleWizardAdvance).Methods("POST", "OPTIONS")

	p.HandleFunc("/recommendations", s.handleListRecommendations).Methods("GET", "OPTIONS")
	p.HandleFunc("/recommendations/generate", s.handleGenerateRecommendations).Methods("POST", "OPTIONS")

	p.HandleFunc("/trackers", s.handleListTrackers).Methods("GET", "OPTIONS")
	p.HandleFunc("/trackers", s.handleCreateTracker).Methods("POST", "OPTIONS")
	p.HandleFunc("/trackers/{id}", s.handleUpdateTracker).Methods("PUT", "OPTIONS")
	p.HandleFunc("/trackers/{id}", s.handleDeleteTracker).Methods("DELETE", "OPTIONS")

	p.HandleFunc("/essays", s.handleListEssays).Methods("GET", "OPTIONS")
	p.HandleFunc("/essays", s.handleCreateEssay).Methods("POST", "OPTIONS")
	p.HandleFunc("/essays/{id}", s.handleGetEssay).Methods("GET", "OPTIONS")
	p.HandleFunc("/essays/{id}", s.handleUpdateEssay).Methods("PUT", "OPTIONS")
	p.HandleFunc("/essays/{id}", s.handleDeleteEssay).Methods("DELETE", "OPTIONS")
	p.HandleFunc("/essays/{id}/analyze", s.handleAnalyzeEssay).Methods("POST", "OPTIONS")

	p.HandleFunc("/tasks", s.handleListTasks).Methods("GET", "OPTIONS")
	p.HandleFunc("/tasks", s.handleCreateTask).Methods("POST", "OPTIONS")
	p.HandleFunc("/tasks/calendar", s.handleTaskCalendar).Methods("GET", "OPTIONS")
	p.HandleFunc("/tasks/grouped", s.handleTasksGrouped).Methods("GET", "OPTIONS")
	p.HandleFunc("/tasks/{id}", s.handleUpdateTask).Methods("PUT", "OPTIONS")
	p.HandleFunc("/tasks/{id}", s.handleDeleteTask).Methods("DELETE", "OPTIONS")

	p.HandleFunc("/scholarships", s.handleListScholarships).Methods("GET", "OPTIONS")
	p.HandleFunc("/scholarships", s.handleCreateScholarship).Methods("POST", "OPTIONS")
	p.HandleFunc("/scholarships/discover", s.handleDiscoverScholarships).Methods("POST", "OPTIONS")
	p.HandleFunc("/scholarships/search", s.handleSearchScholarships).Methods("GET", "OPTIONS")
	p.HandleFunc("/scholarships/{id}", s.handleUpdateScholarship).Methods("PUT", "OPTIONS")
	p.HandleFunc("/scholarships/{id}", s.handleDeleteScholarship).Methods("DELETE", "OPTIONS")

	p.HandleFunc("/colleges", s.handleListColleges).Methods("GET", "OPTIONS")
	p.HandleFunc("/colleges", s.handleCreateCollege).Methods("POST", "OPTIONS")
	p.HandleFunc("/colleges/{id}", s.handleUpdateCollege).Methods("PUT", "OPTIONS")
	p.HandleFunc("/colleges/{id}", s.handleDeleteCollege).Methods("DELETE", "OPTIONS")

	p.HandleFunc("/files", s.handleUploadFile).Methods("POST", "OPTIONS")
	p.HandleFunc("/files", s.handleDeleteFile).Methods("DELETE", "OPTIONS")

	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
