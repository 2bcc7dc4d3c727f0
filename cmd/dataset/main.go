// 資料集工具：產生合成食譜資料集，或把 JSONL 資料集匯入 SQLite。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"recipe-analyzer/internal/core/dataset"
	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		generate  = flag.Bool("generate", false, "產生合成資料集（JSONL + CSV）")
		importSrc = flag.String("import", "", "匯入資料集，可為本地 JSONL 檔案或 HTTP(S) URL")
		replace   = flag.Bool("replace", false, "匯入前清空既有資料")
		total     = flag.Int("total", 0, "產生的食譜數量（預設取設定值）")
		batchSize = flag.Int("batch", 0, "批次大小（預設取設定值）")
		seed      = flag.Int64("seed", 0, "隨機種子，0 表示使用當前時間")
		outDir    = flag.String("out", "", "輸出目錄（預設取設定值）")
	)
	flag.Parse()

	if !*generate && *importSrc == "" {
		fmt.Println("Usage: dataset -generate | -import <file|url> [-replace]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 命令列參數覆蓋設定值
	if *total > 0 {
		cfg.Dataset.Total = *total
	}
	if *batchSize > 0 {
		cfg.Dataset.BatchSize = *batchSize
	}
	if *seed != 0 {
		cfg.Dataset.Seed = *seed
	}
	if *outDir != "" {
		cfg.Dataset.OutputDir = *outDir
	}

	ctx := context.Background()

	if *generate {
		runGenerate(cfg)
	}

	if *importSrc != "" {
		runImport(ctx, cfg, *importSrc, *replace)
	}
}

// runGenerate 產生資料集並寫出檔案
func runGenerate(cfg *config.Config) {
	start := time.Now()
	common.LogInfo("開始產生資料集",
		zap.Int("total", cfg.Dataset.Total),
		zap.Int("batch_size", cfg.Dataset.BatchSize),
		zap.Int64("seed", cfg.Dataset.Seed),
		zap.String("output_dir", cfg.Dataset.OutputDir),
	)

	gen := dataset.NewGenerator(cfg.Dataset.Seed)
	if err := gen.WriteFiles(cfg.Dataset.OutputDir, cfg.Dataset.Total, cfg.Dataset.BatchSize); err != nil {
		common.LogFatal("資料集產生失敗", zap.Error(err))
	}

	common.LogInfo("資料集產生完成",
		zap.Int("total", cfg.Dataset.Total),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// runImport 匯入資料集到 SQLite
func runImport(ctx context.Context, cfg *config.Config, src string, replace bool) {
	recipeStore, err := store.New(cfg.Store.Path)
	if err != nil {
		common.LogFatal("Failed to initialize recipe store",
			zap.Error(err),
			zap.String("path", cfg.Store.Path),
		)
	}
	defer recipeStore.Close()

	importer := dataset.NewImporter(recipeStore, cfg.Dataset.BatchSize)

	start := time.Now()
	common.LogInfo("開始匯入資料集",
		zap.String("source", src),
		zap.Bool("replace", replace),
	)

	var imported int
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		imported, err = importer.ImportURL(ctx, src, replace)
	} else {
		imported, err = importer.ImportFile(ctx, src, replace)
	}
	if err != nil {
		common.LogFatal("資料集匯入失敗",
			zap.Error(err),
			zap.String("source", src),
		)
	}

	common.LogInfo("資料集匯入完成",
		zap.Int("imported", imported),
		zap.Duration("elapsed", time.Since(start)),
	)
}
