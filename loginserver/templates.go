package loginserver

import (
	"html/template"

	"github.com/ugent-library/sso-login/nls"
)

const templateLoginS = `<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{index .Text "LOGIN"}}</title>
<style type="text/css">
.blue-border {
	border-color: #1e64c8;
}
.has-error input {
	border-color: #c00;
}
.color-red, .help-inline {
	color: #c00;
}
.serverErrorMsg {
	margin-top: 15px;
}
</style>
</head>
<body>
	<input type="hidden" name="appLogo" value="{{.Scaffold.AppLogo}}">
	<input type="hidden" name="tenantLogo" value="{{.Scaffold.TenantLogo}}">
	<input type="hidden" name="loginTicket" value="{{.Scaffold.LoginTicket}}">
	<input type="hidden" name="flowExecutionKey" value="{{.Scaffold.ExecutionKey}}">
	<input type="hidden" name="prevAddressContainer" value="{{.Scaffold.PrevAddress}}">
	{{range .Errors}}
	<input type="hidden" name="loginErrorMsg" value="{{.}}">
	{{end}}
	<form id="tempForm" method="POST" action="{{.FormAction}}"></form>
	<ul id="list-providers" hidden>
		{{range .Scaffold.Providers}}
		<li id="{{.ID}}"><a href="{{.Href}}">{{.Name}}</a></li>
		{{end}}
	</ul>
	<div id="login-main">
	<div id="loginColumns">
		<img id="tenantBranding" alt="">
		<h1>{{index .Text "SIGNIN"}}</h1>
		<div class="serverErrorMsg" hidden></div>
		<form id="loginForm" method="POST"
			data-username-required="{{index .Text "USERNAME_REQUIRED"}}"
			data-password-required="{{index .Text "PASSWORD_REQUIRED"}}">
			<div class="ot_username">
				<label class="userNameLabel" for="username" hidden>{{index .Text "ENTEREMAIL"}}</label>
				<input id="username" name="username" type="text" placeholder="{{index .Text "ENTEREMAIL"}}" value="{{.Username}}">
				<span id="usernameError" class="help-inline"></span>
			</div>
			<div class="ot_password">
				<label class="passwordLabel" for="password" hidden>{{index .Text "PASSWORD"}}</label>
				<input id="password" name="password" type="password" placeholder="{{index .Text "PASSWORD"}}">
				<span id="passwordError" class="help-inline"></span>
			</div>
			<input type="hidden" name="lt">
			<input type="hidden" name="execution">
			<input type="hidden" name="prevAddress">
			<input type="hidden" name="_eventId" value="submit">
			<button type="submit">{{index .Text "LOGIN"}}</button>
		</form>
		<a id="forgetPasswordLink" href="#">{{index .Text "FORGOTPWD"}}</a>
		<div class="socialNetWorks">
			<a id="facebook" href="#">{{index .Text "SIGNINFACEBOOK"}}</a>
			<a id="twitter" href="#">{{index .Text "SIGNINTWITTER"}}</a>
			<a id="google" href="#">{{index .Text "SIGNINGOOGLE"}}</a>
			<a id="linkedin" href="#">{{index .Text "SIGNINLINKEDIN"}}</a>
		</div>
		<footer>{{index .Text "COPYRIGHT"}}</footer>
	</div>
	</div>
<script type="text/javascript">
(() => {
	const img = document.getElementById("tenantBranding");
	const fallback = () => {
		const src = img.dataset.fallbackSrc;
		if (!src) return;
		delete img.dataset.fallbackSrc;
		img.src = src;
	};
	img.addEventListener("error", fallback);
	if (img.complete && img.getAttribute("src") && img.naturalWidth === 0) fallback();

	const form = document.getElementById("loginForm");
	const fields = {
		username: {caption: ".userNameLabel", group: ".ot_username", message: "#usernameError", required: form.dataset.usernameRequired},
		password: {caption: ".passwordLabel", group: ".ot_password", message: "#passwordError", required: form.dataset.passwordRequired},
	};
	for (const [id, f] of Object.entries(fields)) {
		const input = document.getElementById(id);
		input.addEventListener("focus", () => {
			document.querySelector(f.caption).hidden = false;
			input.classList.add("blue-border");
		});
		input.addEventListener("blur", () => {
			if (input.value.trim() === "") document.querySelector(f.caption).hidden = true;
			input.classList.remove("blue-border");
		});
	}
	form.addEventListener("submit", evt => {
		document.querySelector(".serverErrorMsg").hidden = true;
		for (const [id, f] of Object.entries(fields)) {
			const failed = document.getElementById(id).value.trim() === "";
			document.querySelector(f.message).textContent = failed ? f.required : "";
			document.querySelector(f.group).classList.toggle("has-error", failed);
			if (failed) evt.preventDefault();
		}
	});
	setTimeout(() => document.getElementById("username").focus(), 500);
})();
</script>
</body>
</html>
`

var templateLogin = template.Must(template.New("").Parse(templateLoginS))

type templateLoginParams struct {
	Lang       string
	Text       nls.Table
	FormAction string
	Scaffold   *Scaffold
	Errors     []string
	Username   string
}
