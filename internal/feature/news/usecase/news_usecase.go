package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"market_backend/internal/feature/news/domain/entity"
)

const (
	// DefaultNewsLimit はニュース一覧のデフォルト件数です。
	DefaultNewsLimit = 10
	// SummaryNewsLimit は要約の入力に使う記事の最大件数です。
	SummaryNewsLimit = 25
)

// summaryPromptTemplate はLLM要約のプロンプトです。入力はスクレイピングした
// 韓国経済ニュースの見出し群で、個別事件の羅列ではなくマクロの流れとして
// 解釈させます。
const summaryPromptTemplate = `너는 거시경제 흐름을 분석하는 시장 애널리스트다.
입력된 한국 경제 뉴스(제목/언론사/시간/링크)를 기반으로, 한국 시장에 국한하지 말고
글로벌 매크로(미국 금리/달러/유가/중국/유럽)와 연결해 '경제의 큰 흐름'을 해석하라.
뉴스를 개별 사건으로 나열하지 말고, (유동성 → 성장/물가 → 정책 → 자산가격) 연결 구조로 설명하라.

[규칙]
- 최소 10개 기사 이상을 사용하고, 핵심 bullet에는 근거 기사 번호를 붙여라. 예: (근거: #3, #7)
- 입력에 없는 가격/지표 수치를 만들어내지 말고, "연결 가능성"만 제시하라.
- 확정 표현 금지. "~가능성", "~우려", "~시사"로 표현하라.

[출력 형식]
0) ✅ 사용 기사 수: N개 — 영향 큰 기사 TOP3 제목(각 #번호 포함)
1) 🧭 오늘의 경제 흐름 요약(4~6줄)
2) 💰 자금의 방향(최소 4 bullet)
3) 🏭 구조적 변화 신호(최소 4 bullet, [단기]/[구조] 태그)
4) 📉 단기 리스크 요인(최소 4 bullet, 트리거 형태)
5) 🔍 앞으로 주목할 경제 변수(최소 4 bullet)

[입력 뉴스 목록]
%s`

// NewsRepository は上流サイトからのニュース取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NewsRepository interface {
	FetchNews(ctx context.Context, limit int) ([]entity.Article, error)
}

// NewsAnalyzer はプロンプトから要約テキストを生成します。
type NewsAnalyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// SummaryStore は生成済み要約の永続化を抽象化します。
type SummaryStore interface {
	Save(summary entity.Summary) error
	Load() (entity.Summary, error)
}

// NewsUsecase はニュース取得と日次要約のユースケースを定義します。
// analyzer はnil可で、その場合は常に見出しベースの簡易要約を使います。
type NewsUsecase struct {
	news     NewsRepository
	analyzer NewsAnalyzer
	store    SummaryStore
}

// NewNewsUsecase はNewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(news NewsRepository, analyzer NewsAnalyzer, store SummaryStore) *NewsUsecase {
	return &NewsUsecase{news: news, analyzer: analyzer, store: store}
}

// ListNews は直近の経済ニュースを最大limit件返します。
func (u *NewsUsecase) ListNews(ctx context.Context, limit int) ([]entity.Article, error) {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	return u.news.FetchNews(ctx, limit)
}

// GenerateSummary は最新ニュースから日次要約を生成・保存して返します。
// LLMが未設定または失敗した場合は見出しベースの簡易要約にフォールバックします。
func (u *NewsUsecase) GenerateSummary(ctx context.Context) (entity.Summary, error) {
	items, err := u.news.FetchNews(ctx, SummaryNewsLimit)
	if err != nil {
		return entity.Summary{}, err
	}

	text := u.llmSummary(ctx, items)
	if text == "" {
		text = fallbackSummary(items)
	}

	now := time.Now()
	summary := entity.Summary{
		Date:        now.Format("2006-01-02"),
		GeneratedAt: now.Format("2006-01-02T15:04:05"),
		Summary:     text,
		Count:       len(items),
	}
	if err := u.store.Save(summary); err != nil {
		return entity.Summary{}, fmt.Errorf("save summary: %w", err)
	}
	return summary, nil
}

// LatestSummary は最後に保存された要約を返します。
// まだ1度も生成されていない場合は ErrNoSummary を返します。
func (u *NewsUsecase) LatestSummary(ctx context.Context) (entity.Summary, error) {
	return u.store.Load()
}

// llmSummary はLLMによる要約を試み、使えない場合は空文字列を返します。
func (u *NewsUsecase) llmSummary(ctx context.Context, items []entity.Article) string {
	if u.analyzer == nil || len(items) == 0 {
		return ""
	}

	var bundle strings.Builder
	for _, n := range items {
		fmt.Fprintf(&bundle, "- 제목: %s\n  언론사: %s\n  시간: %s\n  링크: %s\n",
			n.Title, n.Press, n.Ts, n.Link)
	}

	text, err := u.analyzer.Analyze(ctx, fmt.Sprintf(summaryPromptTemplate, bundle.String()))
	if err != nil {
		// LLM失敗は要約全体の失敗にしない。簡易要約へフォールバック
		slog.Warn("llm summary failed, falling back", "error", err)
		return ""
	}
	return text
}

// fallbackSummary はLLMなしでも動く、見出しベースの簡易要約です。
func fallbackSummary(items []entity.Article) string {
	var lines []string
	for i, n := range items {
		if i >= DefaultNewsLimit {
			break
		}
		s := fmt.Sprintf("%d. %s", i+1, n.Title)
		var meta []string
		if n.Press != "" {
			meta = append(meta, n.Press)
		}
		if n.Ts != "" {
			meta = append(meta, n.Ts)
		}
		if len(meta) > 0 {
			s += fmt.Sprintf(" (%s)", strings.Join(meta, " · "))
		}
		lines = append(lines, s)
	}

	if len(lines) == 0 {
		return "표시할 뉴스가 없습니다."
	}

	return "🧠 오늘의 이슈(제목 기반 빠른 요약)\n" +
		strings.Join(lines, "\n") +
		"\n\n✅ 체크포인트\n" +
		"- 금리/환율/물가 관련 제목이 많은지\n" +
		"- 반도체/AI/2차전지 등 특정 섹터 쏠림이 있는지\n" +
		"- 정책/지정학 리스크(관세/전쟁/규제) 키워드가 있는지\n"
}
