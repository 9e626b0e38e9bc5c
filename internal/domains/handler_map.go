package domains

import (
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/common"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domains/handlers/batch/analyze"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	model.ActionTypeBatchAnalyze: analyze.NewAnalyzeHandler,

	// 未来扩展示例：
	// "po_batch_revalidate": revalidate.NewRevalidateHandler,
}
