// Package views holds the minimal inline HTML the service renders. The
// pages are deliberately plain; the pipeline behind them is the product.
package views

import "html/template"

const homeHTML = `<!DOCTYPE html>
<html>
<body>
<form id="podcastForm" action="/generate" method="get" style="font-family: sans-serif; padding: 2rem; max-width: 400px;">
    <label>Enter your city:</label><br>
    <input name="city" placeholder="e.g. State College" required><br><br>

    <label>Enter your state (optional):</label><br>
    <input name="state" placeholder="e.g. PA"><br><br>

    <label>Your email address:</label><br>
    <input name="email" type="email" placeholder="you@example.com" required><br><br>

    <button type="submit" id="submitBtn" style="padding: 0.5rem 1rem; background: #28a745; color: white; border: none;">
        Generate Podcast
    </button>
</form>
<p style="font-family: sans-serif; padding: 0 2rem;"><a href="/login">Log in</a> to pick the stories yourself.</p>
<script>
    const form = document.getElementById('podcastForm');
    const submitBtn = document.getElementById('submitBtn');
    form.addEventListener('submit', () => {
        submitBtn.disabled = true;
        submitBtn.innerText = "Generating...";
    });
</script>
</body>
</html>`

const loginHTML = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; padding: 2rem; max-width: 400px;">
{{if .Flash}}<p style="color: #c0392b;">{{.Flash}}</p>{{end}}
<form action="/login" method="post">
    <label>Username:</label><br>
    <input name="username" required><br><br>

    <label>Password:</label><br>
    <input name="password" type="password" required><br><br>

    <button type="submit" style="padding: 0.5rem 1rem; background: #28a745; color: white; border: none;">
        Log in
    </button>
</form>
</body>
</html>`

const selectionHTML = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; padding: 2rem; max-width: 600px;">
{{if .Flash}}<p style="color: #c0392b;">{{.Flash}}</p>{{end}}
<h2>Local news for {{.Location}}</h2>
{{if .Items}}
<form action="/generate-podcast" method="post">
    <input type="hidden" name="selection_token" value="{{.Token}}">
    {{range $i, $item := .Items}}
    <label style="display: block; margin-bottom: 0.5rem;">
        <input type="checkbox" name="selected_news" value="{{$i}}">
        <strong>{{$item.Title}}</strong>{{if $item.Description}} &mdash; {{$item.Description}}{{end}}
    </label>
    {{end}}
    <button type="submit" style="padding: 0.5rem 1rem; background: #28a745; color: white; border: none;">
        Generate Podcast
    </button>
</form>
{{else}}
<p>No articles found for {{.Location}} right now. Try again later.</p>
{{end}}
<p><a href="/select-news">Refresh stories</a> &middot; <a href="/logout">Log out</a></p>
</body>
</html>`

// Templates returns the named page templates for gin's HTML renderer.
func Templates() *template.Template {
	t := template.Must(template.New("home").Parse(homeHTML))
	template.Must(t.New("login").Parse(loginHTML))
	template.Must(t.New("selection").Parse(selectionHTML))
	return t
}
