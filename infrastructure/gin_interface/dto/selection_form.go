package dto

type SelectionForm struct {
	Token    string `form:"selection_token"`
	Selected []int  `form:"selected_news"`
}
