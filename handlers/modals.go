package handlers

import (
	"github.com/kevinaaaquil/oct-library/overlay"
	"github.com/kevinaaaquil/oct-library/store"
)

type modal struct {
	template string
	title    string
	prepare  func(v *pageView)
}

// modals maps every open overlay kind to the template that renders it.
var modals = map[overlay.Kind]modal{
	overlay.Admin:      {template: "modal_admin", title: "管理画面"},
	overlay.BookDetail: {template: "modal_book", title: "図書詳細", prepare: prepareBook},
	overlay.NewsDetail: {template: "modal_news", title: "図書館通信", prepare: prepareNews},
	overlay.Access:     {template: "modal_access", title: "アクセス・地図"},
	overlay.Feature:    {template: "modal_feature", title: "今月の特集", prepare: prepareFeature},
	overlay.Librarian:  {template: "modal_librarian", title: "司書紹介"},
	overlay.Survey:     {template: "modal_survey", title: "アンケート"},
	overlay.Calendar:   {template: "modal_calendar", title: "開館カレンダー"},
}

// prepareBook resolves the book payload. An unknown id leaves Book nil and the modal renders empty.
func prepareBook(v *pageView) {
	id := v.Overlay.BookID
	for i := range v.Content.Books {
		if v.Content.Books[i].ID == id {
			b := v.Content.Books[i]
			v.Book = &b
			break
		}
	}
	v.IsReserved = v.Session.Reserved.Has(id)
	v.IsBookmarked = v.Session.WantToRead.Has(id)
}

func prepareNews(v *pageView) {
	for i := range v.Content.News {
		if v.Content.News[i].ID == v.Overlay.NewsID {
			n := v.Content.News[i]
			v.News = &n
			return
		}
	}
}

func prepareFeature(v *pageView) {
	v.FeatureBooks = store.ResolveBooks(v.Content.Books, v.Content.Feature.Books)
}
