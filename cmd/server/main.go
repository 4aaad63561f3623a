package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"freightdesk/apiclient"
	"freightdesk/config"
	"freightdesk/db"
	"freightdesk/db/mongo"
	"freightdesk/db/postgres"
	"freightdesk/engine/refdata"
	"freightdesk/engine/session"
	"freightdesk/handlers"
	"freightdesk/repository"
	"freightdesk/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var partyRepo repository.PartyRepository
	var referenceRepo repository.ReferenceRepository
	var quotationRepo repository.QuotationRepository
	var bookingRepo repository.BookingRepository
	var memoRepo repository.MemoRepository

	remote := db.DBType(cfg.DBType) == db.Remote

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		partyRepo = repository.NewPostgresPartyRepo(pg.Conn)
		referenceRepo = repository.NewPostgresReferenceRepo(pg.Conn)
		quotationRepo = repository.NewPostgresQuotationRepo(pg.Conn)
		bookingRepo = repository.NewPostgresBookingRepo(pg.Conn)
		memoRepo = repository.NewPostgresMemoRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		partyRepo = repository.NewMongoPartyRepo(mg.Client)
		referenceRepo = repository.NewMongoReferenceRepo(mg.Client)
		quotationRepo = repository.NewMongoQuotationRepo(mg.Client)
		bookingRepo = repository.NewMongoBookingRepo(mg.Client)
		memoRepo = repository.NewMongoMemoRepo(mg.Client)

	case db.Remote:
		if cfg.RemoteAPIURL == "" {
			panic("REMOTE_API_URL not set")
		}
		client := apiclient.NewClient(cfg.RemoteAPIURL, cfg.RemoteAPIToken)

		partyRepo = apiclient.NewPartyClient(client)
		referenceRepo = apiclient.NewReferenceClient(client)
		quotationRepo = apiclient.NewQuotationClient(client)
		bookingRepo = apiclient.NewBookingClient(client)

	default:
		panic("DB_TYPE not supported")
	}

	// Reference cache, loaded once at boot and reloaded on party creation
	refCache := refdata.NewCache(referenceRepo, partyRepo)
	if err := refCache.Reload(); err != nil {
		log.Printf("reference data load failed, lists start empty: %v", err)
	}

	// Editing sessions with periodic expiry sweep
	manager := session.NewManager(quotationRepo, session.SystemClock(), cfg.SessionTTL)
	go func() {
		for range time.Tick(time.Minute) {
			if n := manager.Sweep(); n > 0 {
				log.Printf("swept %d expired sessions", n)
			}
		}
	}()

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	referenceHandler := &handlers.ReferenceHandler{Ref: refCache}
	partyHandler := &handlers.PartyHandler{Repo: partyRepo, Ref: refCache}
	bookingHandler := &handlers.BookingHandler{Repo: bookingRepo}
	sessionHandler := &handlers.SessionHandler{
		Manager:  manager,
		Bookings: bookingRepo,
		Parties:  partyRepo,
		Ref:      refCache,
	}
	memoHandler := &handlers.MemoHandler{Repo: memoRepo, Bookings: bookingRepo}

	routes.SetupRoutes(userHandler, referenceHandler, partyHandler, bookingHandler, sessionHandler, memoHandler, remote)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
