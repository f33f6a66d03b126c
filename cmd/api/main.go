package main

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(clientID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  clientID,
		"role": string(role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func newLogger(env string) *zap.Logger {
	var zc zap.Config
	if env == "prod" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{"stdout"}

	logger, err := zc.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func main() {
	//.envは無くても動く
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.GoEnv)
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Categorie{},
		&model.Produit{},
		&model.Panier{},
		&model.ProduitPanier{},
		&model.Client{},
		&model.Commande{},
		&model.AjustementStock{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	produitRepo := infraRepo.NewProduitGormRepository(gormDB)
	categorieRepo := infraRepo.NewCategorieGormRepository(gormDB)
	panierRepo := infraRepo.NewPanierGormRepository(gormDB)
	commandeRepo := infraRepo.NewCommandeGormRepository(gormDB)
	clientRepo := infraRepo.NewClientGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	produitUC := usecase.NewProduitUsecase(produitRepo, categorieRepo, txManager)
	categorieUC := usecase.NewCategorieUsecase(categorieRepo)
	panierUC := usecase.NewPanierUsecase(txManager, panierRepo)
	commandeUC := usecase.NewCommandeUsecase(commandeRepo, panierRepo, clientRepo)
	clientUC := usecase.NewClientUsecase(clientRepo)
	registerUC := auth.NewRegisterClientUsecase(clientRepo, hasher)
	loginUC := auth.NewLoginUsecase(clientRepo, verifier, issuer, clock)

	//Handler生成
	handlers := server.Handlers{
		Auth:      handler.NewAuthHandler(registerUC, loginUC),
		Produit:   handler.NewProduitHandler(produitUC),
		Categorie: handler.NewCategorieHandler(categorieUC),
		Client:    handler.NewClientHandler(clientUC),
		Panier:    handler.NewPanierHandler(panierUC),
		Commande:  handler.NewCommandeHandler(commandeUC),
	}

	e := server.New(logger)
	server.RegisterRoutes(e, cfg, handlers)

	//Server起動
	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	logger.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
