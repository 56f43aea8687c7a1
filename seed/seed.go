// Package seed holds the content every collection starts with.
package seed

import "github.com/kevinaaaquil/oct-library/models"

// Books returns the initial catalogue.
func Books() []models.Book {
	return []models.Book{
		{
			ID:            "1",
			Title:         "静寂の森",
			Author:        "佐藤 かおり",
			Description:   "都会の喧騒を離れ、森の中で見つけた本当の自分。心温まる再生の物語。",
			CoverURL:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=400",
			Category:      "小説",
			IsNew:         true,
			IsRecommended: false,
		},
		{
			ID:            "2",
			Title:         "未来への建築",
			Author:        "James Wright",
			Description:   "持続可能な都市開発と、これからの建築家が果たすべき役割について。",
			CoverURL:      "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?q=80&w=400",
			Category:      "技術",
			IsNew:         true,
			IsRecommended: true,
		},
		{
			ID:            "3",
			Title:         "忘れられたレシピ",
			Author:        "祖母山 ツネ",
			Description:   "昭和の食卓を彩った、懐かしくも新しい家庭料理の数々。",
			CoverURL:      "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?q=80&w=400",
			Category:      "料理",
			IsNew:         false,
			IsRecommended: true,
		},
	}
}

// News returns the initial bulletins.
func News() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:           "n1",
			Date:         "2024-05-15",
			Title:        "図書館通信 5月号",
			Content:      `<div class="rt-h1-style">薫風香る、読書の季節</div><p>今月号では、新しく導入された電子書籍端末の使い方を特集しています。</p><div class="rt-box-info">5月20日は館内整理のため17時閉館となります。</div>`,
			FileName:     "oct_news_2024_05.pdf",
			PDFURL:       "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			ThumbnailURL: "https://images.unsplash.com/photo-1550399105-c4db5fb85c18?q=80&w=400",
		},
	}
}

// ClosedDates returns the initial closures.
func ClosedDates() []models.ClosedDate {
	return []models.ClosedDate{
		{ID: "c1", Date: "2024-05-13", Reason: "館内整理日"},
		{ID: "c2", Date: "2024-05-27", Reason: "特別整理期間"},
	}
}

// Feature returns the initial monthly feature.
func Feature() models.MonthlyFeature {
	return models.MonthlyFeature{
		Title:       "珈琲と本",
		Subtitle:    "香り豊かな読書時間",
		Description: "深まる季節、温かいコーヒーを片手にページをめくる至福のひとときをご提案します。",
		Content:     `<div class="rt-h2-style">一杯のコーヒーから始まる物語</div><p>かつて文豪たちは喫茶店で名作を書き上げました。本特集では、珈琲の歴史から美味しい淹れ方、そして喫茶店が舞台の小説まで幅広くご紹介します。</p><div class="rt-box-quote">「コーヒーは、地獄のように黒く、死のように強く、恋のように甘い。」</div><div class="rt-box-cinema">★ 特設コーナーにて、バリスタ厳選の豆を展示中 ★</div>`,
		ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?q=80&w=1200",
		Books:       []string{"3", "1"},
	}
}

// Librarians returns the staff shown in the librarian modal.
func Librarians() []models.Librarian {
	return []models.Librarian{
		{
			Name:     "本田 栞",
			Role:     "館長",
			Message:  "本との出会いは、新しい世界への扉です。皆様の「知りたい」を全力でサポートします。",
			ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=200",
		},
	}
}

// Survey returns the initial questionnaire.
func Survey() []models.SurveyQuestion {
	return []models.SurveyQuestion{
		{ID: "q1", Text: "図書館の利用頻度はどれくらいですか？", Type: models.QuestionChoice},
	}
}
