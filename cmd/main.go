package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/swipe-hr/directory-api/internal/company"
	"github.com/swipe-hr/directory-api/internal/login"
	"github.com/swipe-hr/directory-api/internal/models"
	"github.com/swipe-hr/directory-api/internal/profile"
	"github.com/swipe-hr/directory-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	db, err := storage.GetDB()
	if err != nil {
		log.Fatal("database connection failed:", err)
	}

	// AutoMigrate for all tables
	if err := db.AutoMigrate(
		&company.Company{},
		&login.CompanyLogin{},
		&profile.Profile{},
		&models.User{},
	); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Handlers
	companyHandler := company.NewHandler(db)
	loginHandler := login.NewHandler(db)
	profileHandler := profile.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// account routes
	r.HandleFunc("/create-account", loginHandler.CreateAccount).Methods("POST")
	r.HandleFunc("/login", loginHandler.Login).Methods("POST")
	r.HandleFunc("/get-users", loginHandler.GetUsers).Methods("GET")
	r.HandleFunc("/update-user", loginHandler.UpdateUsers).Methods("POST")
	r.HandleFunc("/auth-employee", loginHandler.AuthorizeEmployee).Methods("POST")

	// company routes
	r.HandleFunc("/add-company", companyHandler.AddCompany).Methods("POST")
	r.HandleFunc("/get-company", companyHandler.GetCompany).Methods("GET")
	r.HandleFunc("/update-company", companyHandler.UpdateCompany).Methods("POST")
	r.HandleFunc("/auth-company", companyHandler.AuthorizeCompany).Methods("POST")

	// profile routes
	r.HandleFunc("/upload-file", profileHandler.UploadFile).Methods("POST")
	r.HandleFunc("/search-emp", profileHandler.SearchEmployees).Methods("GET")
	r.HandleFunc("/profile-data", profileHandler.GetProfileData).Methods("GET")
	r.HandleFunc("/update-emp", profileHandler.UpdateEmployee).Methods("POST")
	r.HandleFunc("/download-profiles", profileHandler.DownloadProfiles).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("server listening on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
