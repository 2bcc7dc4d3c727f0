package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Importer 將 JSON-Lines 格式的食譜資料集匯入資料庫
type Importer struct {
	store     *store.RecipeStore
	client    *resty.Client
	batchSize int
}

// NewImporter 建立匯入器
func NewImporter(st *store.RecipeStore, batchSize int) *Importer {
	if batchSize < 1 {
		batchSize = 5000
	}
	client := resty.New().
		SetTimeout(5 * time.Minute).
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second)

	return &Importer{
		store:     st,
		client:    client,
		batchSize: batchSize,
	}
}

// ImportFile 從本地檔案匯入；replace 為真時先清空既有資料
func (im *Importer) ImportFile(ctx context.Context, path string, replace bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	common.LogInfo("開始匯入資料集", zap.String("來源", path))
	return im.importLines(ctx, f, replace)
}

// ImportURL 從 HTTP 來源下載並匯入；replace 為真時先清空既有資料
func (im *Importer) ImportURL(ctx context.Context, url string, replace bool) (int, error) {
	resp, err := im.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("dataset fetch returned status %d", resp.StatusCode())
	}

	common.LogInfo("開始匯入資料集", zap.String("來源", url))
	return im.importLines(ctx, body, replace)
}

// importLines 逐行解析 JSON-Lines 並分批寫入
func (im *Importer) importLines(ctx context.Context, r io.Reader, replace bool) (int, error) {
	if replace {
		if err := im.store.DeleteAll(ctx); err != nil {
			return 0, err
		}
		common.LogInfo("既有食譜已清空（取代模式）")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	batch := make([]common.StoredRecipe, 0, im.batchSize)
	total := 0
	skipped := 0
	start := time.Now()

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := im.store.InsertBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		common.LogInfo("匯入批次完成",
			zap.Int("累計筆數", total),
			zap.Duration("耗時", time.Since(start)),
		)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var recipe common.StoredRecipe
		if err := common.ParseJSONBytes(line, &recipe); err != nil {
			skipped++
			common.LogWarn("略過無法解析的資料列", zap.Error(err))
			continue
		}
		if recipe.RecipeID == "" || recipe.Title == "" {
			skipped++
			continue
		}

		batch = append(batch, recipe)
		if len(batch) >= im.batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("failed to read dataset: %w", err)
	}
	if err := flush(); err != nil {
		return total, err
	}

	common.LogInfo("資料集匯入完成",
		zap.Int("匯入筆數", total),
		zap.Int("略過筆數", skipped),
		zap.Duration("總耗時", time.Since(start)),
	)
	return total, nil
}
