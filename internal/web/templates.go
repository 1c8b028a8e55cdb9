package web

import (
	"bytes"
	"html/template"
)

type templates struct {
	index *template.Template
	game  *template.Template
	frag  *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"iter": func(n int) []int {
			a := make([]int, n)
			for i := range a {
				a[i] = i
			}
			return a
		},
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>` + styles + `</style>
</head><body>{{template "content" .}}</body></html>`))
	// the game page embeds the fragment, so it lives in the same set
	template.Must(base.New("game_fragment").Parse(gameTemplate))
	index := template.Must(base.Clone())
	template.Must(index.New("content").Parse(`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
	game := template.Must(base.Clone())
	template.Must(game.New("content").Parse(`{{template "game_fragment" .}}`))
	// standalone fragment for htmx swaps
	frag := template.Must(template.New("fragment").Funcs(funcs()).Parse(gameTemplate))
	return &templates{index: index, game: game, frag: frag}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const gameTemplate = `
<div id="game">
  <div class="status">{{.MoveLine}}</div>
  <div class="game">
    <div class="game-board">
      <div class="status">{{.Status}}</div>
      {{range $r := iter 3}}
      <div class="board-row">
        {{range $c := iter 3}}{{with index $.Squares (add (mul $r 3) $c)}}
        <form action="/game/{{$.ID}}/play" hx-post="/game/{{$.ID}}/play" hx-target="#game" hx-swap="outerHTML" method="post">
          <input type="hidden" name="i" value="{{.Index}}">
          <button type="submit" class="square{{if .Winning}} square-winner{{end}}">{{.Mark}}</button>
        </form>
        {{end}}{{end}}
      </div>
      {{end}}
    </div>
    <div class="game-info">
      <form action="/game/{{.ID}}/order" hx-post="/game/{{.ID}}/order" hx-target="#game" hx-swap="outerHTML" method="post">
        <button type="submit" class="order-button">{{.Order}}</button>
      </form>
      <ol>
        {{range .Moves}}
        <li>
          <form action="/game/{{$.ID}}/jump" hx-post="/game/{{$.ID}}/jump" hx-target="#game" hx-swap="outerHTML" method="post">
            <input type="hidden" name="move" value="{{.Move}}">
            <button type="submit"{{if .Current}} class="current"{{end}}>{{.Label}}</button>
          </form>
        </li>
        {{end}}
      </ol>
    </div>
  </div>
</div>
`

const styles = `
.game { display: flex; flex-direction: row; }
.game-info { margin-left: 20px; }
.board-row { display: flex; }
.board-row form { margin: 0; }
.square { width: 34px; height: 34px; margin: -1px -1px 0 0; padding: 0; border: 1px solid #999; background: #fff; font-size: 24px; font-weight: bold; line-height: 34px; text-align: center; }
.square-winner { background: #9f9; }
.status { margin-bottom: 10px; }
.current { font-weight: bold; }
`
