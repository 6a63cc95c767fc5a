package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/erp-servicos/internal/config"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/database"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	direction := flag.String("direction", "up", "up aplica as migrações pendentes, down desfaz a última")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.Load()
	migrationLogger := logger.NewLogger(logger.Options{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	defer migrationLogger.Sync()

	var err error
	switch *direction {
	case "up":
		err = database.RunMigrations(cfg.Database, migrationLogger)
	case "down":
		err = database.RollbackMigration(cfg.Database, migrationLogger)
	default:
		log.Fatalf("Direção inválida: %s (use up ou down)", *direction)
	}

	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
